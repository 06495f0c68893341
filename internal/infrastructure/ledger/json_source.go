package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PloomFi/PloomFi/internal/domain/model"
)

// Ledger is a decoded ledger export.
type Ledger struct {
	WalletID     string
	Transactions []model.Record
}

type ledgerDocument struct {
	WalletID     string            `json:"wallet_id"`
	Transactions []json.RawMessage `json:"transactions"`
}

// Decode reads a ledger export: either a JSON array of transaction objects or
// an object with "wallet_id" and "transactions". Numbers are kept as
// json.Number so amounts are not rounded through float64. Array elements
// that are not objects decode to empty records rather than failing.
func Decode(r io.Reader) (Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Ledger{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Ledger{}, nil
	}

	var doc ledgerDocument
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &doc.Transactions); err != nil {
			return Ledger{}, fmt.Errorf("failed to decode ledger array: %w", err)
		}
	case '{':
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Ledger{}, fmt.Errorf("failed to decode ledger object: %w", err)
		}
	default:
		return Ledger{}, fmt.Errorf("failed to decode ledger: expected JSON array or object")
	}

	records := make([]model.Record, len(doc.Transactions))
	for i, raw := range doc.Transactions {
		records[i] = decodeRecord(raw)
	}
	return Ledger{WalletID: doc.WalletID, Transactions: records}, nil
}

func decodeRecord(raw json.RawMessage) model.Record {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec model.Record
	if err := dec.Decode(&rec); err != nil || rec == nil {
		return model.Record{}
	}
	return rec
}

// StdinWalletID names wallets read from a bare array on standard input.
const StdinWalletID = "stdin"

// FileSource reads a ledger export from disk. It implements port.TransactionSource.
type FileSource struct {
	path     string
	walletID string
}

// NewFileSource creates a FileSource. A non-empty walletID overrides the one
// stored in the file. The path "-" reads standard input.
func NewFileSource(path, walletID string) *FileSource {
	return &FileSource{path: path, walletID: walletID}
}

// WalletID returns the configured wallet id, or the one resolved by Records:
// the file's wallet_id, falling back to the file name without its extension
// (StdinWalletID for standard input).
func (s *FileSource) WalletID() string {
	return s.walletID
}

// Records loads and decodes the ledger file.
func (s *FileSource) Records(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r io.Reader = os.Stdin
	if s.path != "-" {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open ledger %s: %w", s.path, err)
		}
		defer f.Close()
		r = f
	}

	l, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if s.walletID == "" {
		s.walletID = l.WalletID
	}
	if s.walletID == "" {
		s.walletID = derivedWalletID(s.path)
	}
	return l.Transactions, nil
}

func derivedWalletID(path string) string {
	if path == "-" {
		return StdinWalletID
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
