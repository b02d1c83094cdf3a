package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher pulls the published workbooks off the department portal page:
// scrape the anchor tags, keep spreadsheet links, download into the data
// directory.
type Fetcher struct {
	client  *http.Client
	dataDir string
}

func New(dataDir string) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 60 * time.Second}, dataDir: dataDir}
}

// ExtractLinks parses an HTML page and returns the absolute URLs of every
// linked .xlsx or .csv file.
func ExtractLinks(r io.Reader, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var links []string
	seen := map[string]struct{}{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".csv") {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(u).String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
	})
	return links, nil
}

// WorkbookLinks fetches the page and extracts the workbook links.
func (f *Fetcher) WorkbookLinks(pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse portal url: %w", err)
	}
	resp, err := f.client.Get(pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal page: unexpected status %s", resp.Status)
	}
	return ExtractLinks(resp.Body, base)
}

// Download saves one linked file into the data directory and returns the
// local path.
func (f *Fetcher) Download(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	name := path.Base(u.Path)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("cannot derive file name from %s", link)
	}

	resp, err := f.client.Get(link)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", name, resp.Status)
	}

	if err := os.MkdirAll(f.dataDir, 0o755); err != nil {
		return "", err
	}
	dest := filepath.Join(f.dataDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return dest, nil
}

// FetchAll scrapes the page and downloads every workbook it links.
func (f *Fetcher) FetchAll(pageURL string) ([]string, error) {
	links, err := f.WorkbookLinks(pageURL)
	if err != nil {
		return nil, err
	}
	var saved []string
	for _, link := range links {
		p, err := f.Download(link)
		if err != nil {
			return saved, err
		}
		saved = append(saved, p)
	}
	return saved, nil
}
