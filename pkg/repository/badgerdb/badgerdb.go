package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/interfaces"
	"github.com/audit-lab/imsaudit/pkg/domain/model"
)

// snapshotKey is the fixed storage key of the persisted aggregate
var snapshotKey = []byte("snapshot/current")

// Client is a BadgerDB-backed snapshot repository. The whole aggregate is
// serialized as one JSON value under a fixed key.
type Client struct {
	db *badger.DB
}

var _ interfaces.SnapshotRepository = &Client{}

type config struct {
	inMemory bool
}

type Option func(*config)

// WithInMemory opens the database without an on-disk backing store
func WithInMemory() Option {
	return func(c *config) {
		c.inMemory = true
	}
}

// New opens a BadgerDB snapshot repository at the given path. The caller is
// responsible for calling Close() on the returned client.
func New(path string, opts ...Option) (*Client, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var badgerOpts badger.Options
	if cfg.inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0750); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
		}
		badgerOpts = badger.DefaultOptions(path)
	}
	badgerOpts = badgerOpts.WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open badger database", goerr.V("path", path))
	}

	return &Client{db: db}, nil
}

func (c *Client) Load(ctx context.Context) (*model.Snapshot, error) {
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read snapshot")
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal snapshot")
	}

	return &snap, nil
}

func (c *Client) Save(ctx context.Context, snapshot *model.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal snapshot")
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, raw)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write snapshot")
	}

	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
