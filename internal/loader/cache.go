package loader

import (
	"log"
	"sync"

	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// Cache loads the survey file on first access and keeps it for the life
// of the process. A failed load is retried on the next call.
type Cache struct {
	mu    sync.Mutex
	path  string
	opts  Options
	table *models.RawResponseTable
	read  func(string, Options) (*models.RawResponseTable, error)
}

// NewCache creates a cache for the given file
func NewCache(path string, opts Options) *Cache {
	return &Cache{path: path, opts: opts, read: ReadFile}
}

// Path returns the file the cache reads from
func (c *Cache) Path() string {
	return c.path
}

// Get returns the cached table, reading the file if needed.
// Callers must treat the returned table as read-only.
func (c *Cache) Get() (*models.RawResponseTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil {
		return c.table, nil
	}

	table, err := c.read(c.path, c.opts)
	if err != nil {
		return nil, err
	}

	log.Printf("Survey data loaded: %s (%d rows, %d columns)", c.path, len(table.Rows), len(table.Columns))
	c.table = table
	return table, nil
}

// Loaded reports whether the table has been read
func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table != nil
}
