package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nebulohub/mobile/integration/nebulo"
	"github.com/nebulohub/mobile/pkg/validate"
)

func newStartupsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "startups",
		Short: "Browse the startup catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all startups",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}

			startups, err := (*a).client.Startups.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, s := range startups {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s  %-30s  %s\n", s.CNPJ, s.Name, s.Email)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <cnpj>",
		Short: "Show one startup with its skills and ratings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}

			startup, err := (*a).client.Startups.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n%s\n", startup.Name, startup.CNPJ, startup.Description)
			fmt.Fprintf(out, "site: %s  contact: %s  owner: %s\n", startup.Site, startup.Email, startup.OwnerName)

			if len(startup.Skills) > 0 {
				fmt.Fprintln(out, "skills:")
				for _, skill := range startup.Skills {
					fmt.Fprintf(out, "  - %s (%s)\n", skill.Name, skill.Type)
				}
			}
			if len(startup.Ratings) > 0 {
				sum := 0
				for _, rating := range startup.Ratings {
					sum += rating.Score
				}
				fmt.Fprintf(out, "rating: %.1f from %d reviews\n",
					float64(sum)/float64(len(startup.Ratings)), len(startup.Ratings))
			}
			return nil
		},
	}

	var startup nebulo.NewStartup
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a startup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}
			if !validate.CNPJ(startup.CNPJ) {
				return errors.New("invalid CNPJ")
			}

			startup.OwnerCPF = (*a).manager.Current().User.ExternalID
			created, err := (*a).client.Startups.Create(cmd.Context(), startup)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", created.Name, created.CNPJ)
			return nil
		},
	}
	add.Flags().StringVar(&startup.CNPJ, "cnpj", "", "CNPJ")
	add.Flags().StringVar(&startup.Name, "name", "", "startup name")
	add.Flags().StringVar(&startup.Email, "email", "", "contact email")
	add.Flags().StringVar(&startup.Site, "site", "", "website")
	add.Flags().StringVar(&startup.Description, "description", "", "short description")
	_ = add.MarkFlagRequired("cnpj")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("email")

	cmd.AddCommand(list, show, add)
	return cmd
}

func newSkillsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Browse the skill catalog",
	}

	var page, pageSize int
	list := &cobra.Command{
		Use:   "list",
		Short: "List skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}

			result, err := (*a).client.Skills.List(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}

			for _, skill := range result.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-25s  %s\n", skill.ID, skill.Name, skill.Type)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d items\n", result.Page, result.TotalItems)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&pageSize, "page-size", 100, "items per page")

	var skill nebulo.NewSkill
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a skill to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}

			created, err := (*a).client.Skills.Create(cmd.Context(), skill)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created skill %d: %s\n", created.ID, created.Name)
			return nil
		},
	}
	add.Flags().StringVar(&skill.Name, "name", "", "skill name")
	add.Flags().StringVar(&skill.Type, "type", "", "skill type")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("type")

	cmd.AddCommand(list, add)
	return cmd
}

func newRateCmd(a **app) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "rate <cnpj> <score>",
		Short: "Rate a startup from 1 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(*a); err != nil {
				return err
			}

			score, err := strconv.Atoi(args[1])
			if err != nil || score < 1 || score > 5 {
				return errors.New("score must be an integer from 1 to 5")
			}

			rating := nebulo.NewRating{
				Score:       score,
				Comment:     comment,
				StartupCNPJ: args[0],
				UserCPF:     (*a).manager.Current().User.ExternalID,
			}

			created, err := (*a).client.Ratings.Create(cmd.Context(), rating)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rating %d recorded\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "c", "", "optional comment")
	return cmd
}
