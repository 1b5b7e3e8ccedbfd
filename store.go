package chartdata

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Client groups the named datasets belonging to one advisory client.
type Client struct {
	Name     string              `json:"name"`
	Datasets map[string]*Dataset `json:"datasets"`
}

// Store holds every client's datasets, persisted as one JSON file per client
// under a data directory.
type Store struct {
	dir     string
	clients map[string]*Client
	dirty   map[string]bool
}

// ClientID derives the stable file identifier for a client name: lower case,
// spaces and dashes folded to underscores.
func ClientID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	return id
}

// LoadStore reads every <id>.json file under dir, repairing each stored
// record to the canonical shape. Repairs are logged and marked dirty so the
// next Save persists them. A missing directory yields an empty store.
func LoadStore(dir string) (*Store, error) {
	s := &Store{dir: dir, clients: make(map[string]*Client), dirty: make(map[string]bool)}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read data directory %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		c, changed, err := loadClientFile(filepath.Join(dir, e.Name()), id)
		if err != nil {
			return nil, err
		}
		s.clients[id] = c
		if changed {
			log.Printf("client %q: stored data repaired to canonical form", id)
			s.dirty[id] = true
		}
	}
	return s, nil
}

// loadClientFile decodes one client file, repairing each dataset record.
func loadClientFile(path, id string) (*Client, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("could not read client file %q: %w", path, err)
	}
	var raw struct {
		Name     string                     `json:"name"`
		Datasets map[string]json.RawMessage `json:"datasets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("could not decode client file %q: %w", path, err)
	}

	changed := false
	c := &Client{Name: raw.Name, Datasets: make(map[string]*Dataset)}
	if c.Name == "" {
		c.Name = id
		changed = true
	}
	if raw.Datasets == nil {
		changed = true
	}
	for name, rec := range raw.Datasets {
		ds, repaired, err := Repair(rec)
		if err != nil {
			return nil, false, fmt.Errorf("client %q dataset %q: %w", id, name, err)
		}
		if repaired {
			log.Printf("client %q: dataset %q repaired", id, name)
			changed = true
		}
		c.Datasets[name] = ds
	}
	return c, changed, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

// Dirty returns the ids of clients with unsaved changes, sorted. Repairs
// applied at load time count as changes.
func (s *Store) Dirty() []string {
	ids := make([]string, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clients returns the known client ids, sorted.
func (s *Store) Clients() []string {
	ids := make([]string, 0, len(s.clients))
	for id := range s.clients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Client returns a client by id.
func (s *Store) Client(id string) (*Client, bool) {
	c, ok := s.clients[id]
	return c, ok
}

// AddClient registers a new client and returns its id. Adding an existing
// client is an error.
func (s *Store) AddClient(name string) (string, error) {
	id := ClientID(name)
	if id == "" {
		return "", fmt.Errorf("client name cannot be empty")
	}
	if _, exists := s.clients[id]; exists {
		return "", fmt.Errorf("client %q already exists", id)
	}
	s.clients[id] = &Client{Name: name, Datasets: make(map[string]*Dataset)}
	s.dirty[id] = true
	return id, nil
}

// DeleteClient removes a client from the store and deletes its file.
func (s *Store) DeleteClient(id string) error {
	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("unknown client %q", id)
	}
	delete(s.clients, id)
	delete(s.dirty, id)
	path := filepath.Join(s.dir, id+".json")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete client file %q: %w", path, err)
	}
	return nil
}

// Dataset returns a client's dataset by name.
func (s *Store) Dataset(clientID, name string) (*Dataset, error) {
	c, ok := s.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("unknown client %q", clientID)
	}
	ds, ok := c.Datasets[name]
	if !ok {
		return nil, fmt.Errorf("client %q has no dataset %q", clientID, name)
	}
	return ds, nil
}

// PutDataset stores a dataset under a client, creating the client on first
// use. The write is persisted on the next Save.
func (s *Store) PutDataset(clientID, name string, ds *Dataset) error {
	if clientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}
	c, ok := s.clients[clientID]
	if !ok {
		c = &Client{Name: clientID, Datasets: make(map[string]*Dataset)}
		s.clients[clientID] = c
	}
	c.Datasets[name] = ds
	s.dirty[clientID] = true
	return nil
}

// Save writes every modified client back to disk. Each file is written to a
// temporary sibling first and renamed into place, so a crash never leaves a
// half-written client file.
func (s *Store) Save() error {
	if len(s.dirty) == 0 {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	for id := range s.dirty {
		c, ok := s.clients[id]
		if !ok {
			continue
		}
		if err := s.saveClient(id, c); err != nil {
			return err
		}
		delete(s.dirty, id)
	}
	return nil
}

func (s *Store) saveClient(id string, c *Client) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode client %q: %w", id, err)
	}
	path := filepath.Join(s.dir, id+".json")
	tmp, err := os.CreateTemp(s.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for client %q: %w", id, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write client %q: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write client %q: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace client file %q: %w", path, err)
	}
	return nil
}
