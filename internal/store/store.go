// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

// Package store persists wardrobe items, marketplace listings and outfit
// history in BadgerDB. Records are stored as JSON values under typed key
// prefixes; per-user records embed the user ID in the key so listing a
// user's data is a single prefix scan.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/vestra-app/vestra/internal/metrics"
)

// ErrNotFound is returned when a requested record does not exist or belongs
// to a different user.
var ErrNotFound = errors.New("record not found")

// Key prefixes for BadgerDB storage
const (
	wardrobeKeyPrefix = "wardrobe:" // wardrobe:<userID>:<itemID>
	listingKeyPrefix  = "listing:"  // listing:<listingID>
	outfitKeyPrefix   = "outfit:"   // outfit:<userID>:<outfitID>
)

// Store is a BadgerDB-backed persistence layer.
type Store struct {
	db *badger.DB
}

// Options configures the underlying BadgerDB instance.
type Options struct {
	// Path is the on-disk database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory, for tests and ephemeral deployments.
	InMemory bool
}

// Open opens (creating if necessary) the database and returns a Store.
func Open(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// wardrobeKey builds the key for one wardrobe item.
func wardrobeKey(userID, itemID string) []byte {
	return []byte(wardrobeKeyPrefix + userID + ":" + itemID)
}

// outfitKey builds the key for one outfit record.
func outfitKey(userID, outfitID string) []byte {
	return []byte(outfitKeyPrefix + userID + ":" + outfitID)
}

// setJSON marshals v and writes it under key in one update transaction.
func (s *Store) setJSON(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// getJSON reads key and unmarshals it into v. Returns ErrNotFound for
// missing keys.
func (s *Store) getJSON(key []byte, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// deleteKey removes key, reporting ErrNotFound when it does not exist.
func (s *Store) deleteKey(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		return txn.Delete(key)
	})
}

// scanPrefix iterates every value under prefix, invoking fn with each raw
// JSON value.
func (s *Store) scanPrefix(prefix []byte, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateWardrobeItem stores a new wardrobe item, assigning its ID and
// timestamps. The item's UserID must be set by the caller.
func (s *Store) CreateWardrobeItem(ctx context.Context, item *WardrobeItem) error {
	start := time.Now()
	item.ID = uuid.New().String()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	err := s.setJSON(wardrobeKey(item.UserID, item.ID), item)
	metrics.RecordStoreOperation("create", "wardrobe_item", time.Since(start), err)
	return err
}

// GetWardrobeItem retrieves one wardrobe item owned by userID.
func (s *Store) GetWardrobeItem(ctx context.Context, userID, itemID string) (*WardrobeItem, error) {
	start := time.Now()
	var item WardrobeItem
	err := s.getJSON(wardrobeKey(userID, itemID), &item)
	metrics.RecordStoreOperation("get", "wardrobe_item", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateWardrobeItem overwrites an existing wardrobe item, refreshing its
// UpdatedAt timestamp. Returns ErrNotFound when the item does not exist.
func (s *Store) UpdateWardrobeItem(ctx context.Context, item *WardrobeItem) error {
	start := time.Now()
	err := func() error {
		var existing WardrobeItem
		if err := s.getJSON(wardrobeKey(item.UserID, item.ID), &existing); err != nil {
			return err
		}
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		return s.setJSON(wardrobeKey(item.UserID, item.ID), item)
	}()
	metrics.RecordStoreOperation("update", "wardrobe_item", time.Since(start), err)
	return err
}

// DeleteWardrobeItem removes one wardrobe item owned by userID.
func (s *Store) DeleteWardrobeItem(ctx context.Context, userID, itemID string) error {
	start := time.Now()
	err := s.deleteKey(wardrobeKey(userID, itemID))
	metrics.RecordStoreOperation("delete", "wardrobe_item", time.Since(start), err)
	return err
}

// ListWardrobeItems returns every wardrobe item owned by userID, in key
// order. An empty wardrobe yields an empty slice, not an error.
func (s *Store) ListWardrobeItems(ctx context.Context, userID string) ([]WardrobeItem, error) {
	start := time.Now()
	items := []WardrobeItem{}
	err := s.scanPrefix([]byte(wardrobeKeyPrefix+userID+":"), func(val []byte) error {
		var item WardrobeItem
		if err := json.Unmarshal(val, &item); err != nil {
			return fmt.Errorf("unmarshal wardrobe item: %w", err)
		}
		items = append(items, item)
		return nil
	})
	metrics.RecordStoreOperation("list", "wardrobe_item", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateListing stores a new marketplace listing, assigning its ID,
// timestamps and an active status.
func (s *Store) CreateListing(ctx context.Context, listing *Listing) error {
	start := time.Now()
	listing.ID = uuid.New().String()
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Status == "" {
		listing.Status = ListingStatusActive
	}

	err := s.setJSON([]byte(listingKeyPrefix+listing.ID), listing)
	metrics.RecordStoreOperation("create", "listing", time.Since(start), err)
	return err
}

// GetListing retrieves one listing by ID.
func (s *Store) GetListing(ctx context.Context, listingID string) (*Listing, error) {
	start := time.Now()
	var listing Listing
	err := s.getJSON([]byte(listingKeyPrefix+listingID), &listing)
	metrics.RecordStoreOperation("get", "listing", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateListing overwrites an existing listing, refreshing UpdatedAt. Only
// the seller may update; a mismatched seller reports ErrNotFound rather than
// leaking the listing's existence.
func (s *Store) UpdateListing(ctx context.Context, listing *Listing) error {
	start := time.Now()
	err := func() error {
		var existing Listing
		if err := s.getJSON([]byte(listingKeyPrefix+listing.ID), &existing); err != nil {
			return err
		}
		if existing.SellerID != listing.SellerID {
			return ErrNotFound
		}
		listing.CreatedAt = existing.CreatedAt
		listing.UpdatedAt = time.Now().UTC()
		return s.setJSON([]byte(listingKeyPrefix+listing.ID), listing)
	}()
	metrics.RecordStoreOperation("update", "listing", time.Since(start), err)
	return err
}

// DeleteListing removes a listing owned by sellerID.
func (s *Store) DeleteListing(ctx context.Context, sellerID, listingID string) error {
	start := time.Now()
	err := func() error {
		var existing Listing
		if err := s.getJSON([]byte(listingKeyPrefix+listingID), &existing); err != nil {
			return err
		}
		if existing.SellerID != sellerID {
			return ErrNotFound
		}
		return s.deleteKey([]byte(listingKeyPrefix + listingID))
	}()
	metrics.RecordStoreOperation("delete", "listing", time.Since(start), err)
	return err
}

// ListListings returns every listing, optionally filtered by status.
func (s *Store) ListListings(ctx context.Context, status string) ([]Listing, error) {
	start := time.Now()
	listings := []Listing{}
	err := s.scanPrefix([]byte(listingKeyPrefix), func(val []byte) error {
		var listing Listing
		if err := json.Unmarshal(val, &listing); err != nil {
			return fmt.Errorf("unmarshal listing: %w", err)
		}
		if status == "" || listing.Status == status {
			listings = append(listings, listing)
		}
		return nil
	})
	metrics.RecordStoreOperation("list", "listing", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// SaveOutfit stores an outfit record in the user's history, assigning its ID
// and timestamp.
func (s *Store) SaveOutfit(ctx context.Context, outfit *OutfitRecord) error {
	start := time.Now()
	outfit.ID = uuid.New().String()
	outfit.CreatedAt = time.Now().UTC()

	err := s.setJSON(outfitKey(outfit.UserID, outfit.ID), outfit)
	metrics.RecordStoreOperation("create", "outfit", time.Since(start), err)
	return err
}

// ListOutfits returns every saved outfit for userID.
func (s *Store) ListOutfits(ctx context.Context, userID string) ([]OutfitRecord, error) {
	start := time.Now()
	outfits := []OutfitRecord{}
	err := s.scanPrefix([]byte(outfitKeyPrefix+userID+":"), func(val []byte) error {
		var outfit OutfitRecord
		if err := json.Unmarshal(val, &outfit); err != nil {
			return fmt.Errorf("unmarshal outfit: %w", err)
		}
		outfits = append(outfits, outfit)
		return nil
	})
	metrics.RecordStoreOperation("list", "outfit", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return outfits, nil
}

// DeleteOutfit removes one saved outfit owned by userID.
func (s *Store) DeleteOutfit(ctx context.Context, userID, outfitID string) error {
	start := time.Now()
	err := s.deleteKey(outfitKey(userID, outfitID))
	metrics.RecordStoreOperation("delete", "outfit", time.Since(start), err)
	return err
}
