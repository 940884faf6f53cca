// Package models defines the core domain models for cinelog.
//
// # Models
//
//   - User: a registered account, identified by a unique email
//   - Session: the single live login session on the device
//   - Movie: a catalog record fetched from TMDB, immutable once fetched
//   - Favorite: a user's saved movie, with a denormalized snapshot of the
//     movie payload taken at save time
//   - Page: one page of catalog results
//
// # Design Principles
//
//  1. Relationships use ID strings instead of pointers to avoid circular
//     references.
//  2. A Favorite embeds the full Movie by value so rendering a favorites
//     list never needs the catalog client.
//  3. Session equality is defined by token equality alone; two sessions for
//     the same user from different logins are different sessions.
package models
