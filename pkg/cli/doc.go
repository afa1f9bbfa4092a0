// Package cli implements the fatsecret command-line interface.
//
// Commands:
//
//	fatsecret search --term milk --hits 5        # crawl and parse search results
//	fatsecret parse -f summary.txt --name Milk   # parse fetched summary text
//	fatsecret parse --rows rows.yaml -t table    # parse a batch of scraped rows
//	fatsecret units -t table                     # list recognised units
//
// Global flags:
//   - --log-level: debug, info, warn or error (env FATSECRET_LOG_LEVEL)
//   - --debug: shorthand for --log-level=debug
//
// Every command accepts --output/-o (default stdout) and --format/-t
// (yaml, json or table). Crawler flags of search read FATSECRET_BASE_URL,
// FATSECRET_USER_AGENT, FATSECRET_CRAWL_RATE, FATSECRET_CRAWL_BURST and
// FATSECRET_CRAWL_CONCURRENCY.
package cli
