// Package scraper provides HTTP fetching and HTML extraction of the daily
// headline data point.
//
// The scraper fetches a news front page (The Daily Pennsylvanian by
// default) and extracts the text of the first element matching a
// configured CSS selector. A page that loads without the expected element
// yields an empty headline rather than an error; only transport failures
// and non-200 responses are reported as errors.
package scraper
