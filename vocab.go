// Package vocab provides a resumable vocabulary harvester for the
// wordsmith.org A.Word.A.Day archive. It discovers per-word page URLs from
// the archive index, extracts definitions and usage citations from each
// word page, and persists everything to CSV files that double as the
// pipeline's resume state.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., csv/, http/, goquery/).
package vocab
