// Package cli implements the mosaic command line.
//
// Commands:
//
//	mosaic solve [file]   reassemble a puzzle and print the corner product
//	                      and the roughness (text or JSON)
//	mosaic generate       print a random puzzle; --answer prints the
//	                      expected results to stderr
//
// Configuration comes from flags, MOSAIC_* environment variables and a
// .env file (see internal/config). Logs go to stderr and carry a run_id.
package cli
