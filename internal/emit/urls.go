package emit

import (
	"bufio"
	"io"
	"strings"
)

// AllURLsFile is the name of the flat URL list covering every category.
const AllURLsFile = "all_cdn_urls.txt"

// IndexFile is the name of the CDN index document.
const IndexFile = "cdn_urls.json"

// CategoryURLsFile names the per-category URL list, e.g. vest_tie_set_cdn_urls.txt.
func CategoryURLsFile(category string) string {
	return strings.ReplaceAll(category, "-", "_") + "_cdn_urls.txt"
}

// WriteURLs writes one URL per line. urls must already be sorted.
func WriteURLs(w io.Writer, urls []string) error {
	bw := bufio.NewWriter(w)
	for _, u := range urls {
		if _, err := bw.WriteString(u + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
