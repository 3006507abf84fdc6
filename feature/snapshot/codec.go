package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"time"

	economymodels "economy-manager/feature/economy/models"
	playershopmodels "economy-manager/feature/playershop/models"
	shopmodels "economy-manager/feature/shop/models"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// Version is the document layout written by Encode.
const Version = 1

// Snapshot is the full economy state at one point in time.
type Snapshot struct {
	Version     int                        `json:"version"`
	CreatedAt   time.Time                  `json:"created_at"`
	Accounts    []economymodels.Account    `json:"accounts"`
	Shops       []shopmodels.Shop          `json:"shops"`
	Tabs        []Tab                      `json:"tabs"`
	Items       []shopmodels.Item          `json:"items"`
	PlayerShops []playershopmodels.Shop    `json:"player_shops"`
	Listings    []playershopmodels.Listing `json:"listings"`
}

// Tab is a shop tab with the scope of its owning shop.
type Tab struct {
	Scope    string `json:"scope"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Counts summarises a snapshot without its rows.
type Counts struct {
	Accounts    int `json:"accounts"`
	Shops       int `json:"shops"`
	Tabs        int `json:"tabs"`
	Items       int `json:"items"`
	PlayerShops int `json:"player_shops"`
	Listings    int `json:"listings"`
}

// Counts returns the row count per table.
func (s *Snapshot) Counts() Counts {
	return Counts{
		Accounts:    len(s.Accounts),
		Shops:       len(s.Shops),
		Tabs:        len(s.Tabs),
		Items:       len(s.Items),
		PlayerShops: len(s.PlayerShops),
		Listings:    len(s.Listings),
	}
}

// Encode writes snap as zstd-compressed JSON.
func Encode(w io.Writer, snap *Snapshot, level int) error {
	if level <= 0 {
		level = 3
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	if err := json.NewEncoder(bw).Encode(snap); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader) (*Snapshot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	var snap Snapshot
	if err := json.NewDecoder(bufio.NewReaderSize(dec, 64*1024)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	return &snap, nil
}
