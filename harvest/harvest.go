// Package harvest orchestrates the two-stage harvesting pipeline:
// URL discovery from the archive index and per-word detail extraction.
// The two stages share no in-process state; they compose through the
// entry and record stores, which double as the resume state. Runs are
// strictly sequential with a courtesy delay between requests, and each
// extracted record is durable before the next key is touched, so a run
// can be killed at any point and resumed by simply running again.
package harvest
