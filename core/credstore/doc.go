// Package credstore provides durable key-value persistence for session
// credentials on the device.
//
// The session manager stores three independent keys per session (token, user
// profile, expiry timestamp) and treats every store failure as non-fatal:
// reads that fail are handled as "not found" and failed writes leave the
// in-memory session authoritative for the current process lifetime. There is
// no transactional guarantee across keys; a record with missing keys is
// discarded by the session manager during restoration.
//
// Two implementations are provided:
//
//   - Memory: mutex-guarded in-process map, used in tests and for sessions
//     that should not survive a restart.
//   - integration/credstore/bbolt: file-backed store for real devices.
//
// Usage:
//
//	store := credstore.NewMemory()
//	if err := store.Set(ctx, "token", token); err != nil {
//		// best-effort: log and continue
//	}
package credstore
