package dataset

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"
)

const datasetCacheKey = "dataset"

// LinkRow maps a subject name to an external material URL, taken from
// any spreadsheet with "link" in its file name.
type LinkRow struct {
	Subject string
	URL     string
}

// Dataset is one consistent view of the data folder: the roster sheets,
// the master timetable and the subject material links. It is immutable
// once loaded; a fresh Dataset replaces it on reload.
type Dataset struct {
	Rosters []Table
	Master  *Table
	Links   []LinkRow
}

// Loader reads every .xlsx file in the data directory and caches the
// result for a short staleness window, so interactive requests do not
// re-read the files on every call.
type Loader struct {
	dataDir    string
	masterFile string
	cache      *gocache.Cache
}

func NewLoader(dataDir, masterFile string, ttl time.Duration) *Loader {
	return &Loader{
		dataDir:    dataDir,
		masterFile: masterFile,
		cache:      gocache.New(ttl, 2*ttl),
	}
}

// Load returns the cached Dataset, reading the data directory when the
// cache has expired.
func (l *Loader) Load() (*Dataset, error) {
	if cached, ok := l.cache.Get(datasetCacheKey); ok {
		return cached.(*Dataset), nil
	}
	return l.Reload()
}

// Reload bypasses the cache, re-reads the data directory and re-primes
// the cache with the result.
func (l *Loader) Reload() (*Dataset, error) {
	ds, err := l.readAll()
	if err != nil {
		return nil, err
	}
	l.cache.SetDefault(datasetCacheKey, ds)
	return ds, nil
}

func (l *Loader) readAll() (*Dataset, error) {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".xlsx") {
			continue
		}

		table, err := readSheet(filepath.Join(l.dataDir, entry.Name()))
		if err != nil {
			log.Printf("Warning: skipping unreadable spreadsheet %s: %v", entry.Name(), err)
			continue
		}

		name := strings.ToLower(entry.Name())
		switch {
		case name == strings.ToLower(l.masterFile):
			ds.Master = table
		case strings.Contains(name, "link"):
			ds.Links = append(ds.Links, linkRows(table)...)
		default:
			ds.Rosters = append(ds.Rosters, *table)
		}
	}
	return ds, nil
}

// readSheet loads the first sheet of an .xlsx file. The first row is
// the header row; headers are trimmed the way the sheets expect.
func readSheet(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{Name: filepath.Base(path)}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	table := &Table{Name: filepath.Base(path)}
	if len(rows) > 0 {
		headers := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.TrimSpace(h)
		}
		table.Headers = headers
		table.Rows = rows[1:]
	}
	return table, nil
}

// linkRows reads a link sheet positionally: first column subject,
// second column URL. Link sheets are authored without headers worth
// matching on.
func linkRows(t *Table) []LinkRow {
	var links []LinkRow
	for _, row := range t.Rows {
		if len(row) < 2 {
			continue
		}
		subject := strings.TrimSpace(row[0])
		url := strings.TrimSpace(row[1])
		if subject == "" || url == "" {
			continue
		}
		links = append(links, LinkRow{Subject: subject, URL: url})
	}
	return links
}
