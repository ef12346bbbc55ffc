// Package app ties a trade store, the analysis options and a logger
// together behind the operations the CLI and HTTP server expose.
package app

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/analysis"
	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

// Service serializes access to one journal. All methods are safe for
// concurrent use.
type Service struct {
	mu    sync.Mutex
	store journal.Store
	opts  analysis.Options
	log   *zap.Logger
}

func New(store journal.Store, opts analysis.Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, opts: opts, log: log}
}

// OpenStore opens the journal backend named by cfg.Type.
func OpenStore(cfg config.JournalConfig, initialBalance float64) (journal.Store, error) {
	switch cfg.Type {
	case "", "csv":
		return journal.NewCSV(cfg.Path, initialBalance)
	case "sqlite":
		return journal.NewSQLite(cfg.Path, initialBalance)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

// Open builds a Service from a validated config.
func Open(cfg *config.Config, log *zap.Logger) (*Service, error) {
	basic, other, err := cfg.Analysis.Criteria()
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(cfg.Journal, cfg.Account.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", cfg.Journal.Path, err)
	}

	opts := analysis.Options{
		Basic:          basic,
		Other:          other,
		HighThreshold:  cfg.Analysis.HighThreshold,
		LowThreshold:   cfg.Analysis.LowThreshold,
		InitialBalance: cfg.Account.InitialBalance,
	}
	return New(store, opts, log), nil
}

func (s *Service) Options() analysis.Options {
	return s.opts
}

// Store exposes the backend for operations only one backend supports.
func (s *Service) Store() journal.Store {
	return s.store
}

// Trades loads the journal. A malformed store reads as empty; the problem
// is returned as a warning instead of an error.
func (s *Service) Trades() ([]journal.Trade, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trades()
}

func (s *Service) trades() ([]journal.Trade, []string, error) {
	trades, err := s.store.LoadAll()
	if errors.Is(err, journal.ErrMalformedStore) {
		s.log.Warn("journal unreadable, treating as empty", zap.Error(err))
		return []journal.Trade{}, []string{err.Error()}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return trades, nil, nil
}

// AddTrade validates and appends a trade, returning it with its sequence
// number and running balance filled in.
func (s *Service) AddTrade(t journal.Trade) (journal.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.(*journal.CSVStore); ok && t.Date != "" {
		s.log.Warn("csv journal has no date column, date dropped",
			zap.String("date", t.Date))
	}

	stored, err := s.store.Append(t)
	if err != nil {
		s.log.Error("append trade", zap.Error(err))
		return journal.Trade{}, err
	}
	s.log.Info("trade appended",
		zap.Int("seq", stored.Seq),
		zap.String("pair", stored.Pair),
		zap.String("side", string(stored.Side)),
		zap.Float64("result", stored.Result),
		zap.Float64("balance", stored.Balance),
	)
	return stored, nil
}

// Trade returns the trade at 1-based position seq.
func (s *Service) Trade(seq int) (journal.Trade, error) {
	trades, _, err := s.Trades()
	if err != nil {
		return journal.Trade{}, err
	}
	return journal.Find(trades, seq)
}

// Balance returns the balance after the last trade, or the initial balance
// for an empty journal.
func (s *Service) Balance() (float64, error) {
	trades, _, err := s.Trades()
	if err != nil {
		return 0, err
	}
	return journal.CurrentBalance(trades, s.opts.InitialBalance), nil
}

// Analyze runs a full analysis pass over the current journal.
func (s *Service) Analyze() (analysis.Report, error) {
	trades, warnings, err := s.Trades()
	if err != nil {
		return analysis.Report{}, err
	}

	r := analysis.Run(trades, s.opts)
	if len(warnings) > 0 {
		r.Warnings = append(warnings, r.Warnings...)
	}
	for _, w := range r.Warnings {
		s.log.Debug("analysis warning", zap.String("warning", w))
	}
	s.log.Info("analysis done",
		zap.Int("trades", r.Summary.Total),
		zap.Int("subsets", r.Subsets),
		zap.Int("high", len(r.High)),
		zap.Int("low", len(r.Low)),
	)
	return r, nil
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Close()
}

// Migrate copies every trade from src to dst in order. dst must be empty
// and src must load cleanly. Balances are recomputed by dst on append.
func Migrate(src, dst journal.Store, log *zap.Logger) (n int, err error) {
	if log == nil {
		log = zap.NewNop()
	}

	trades, err := src.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("migrate: read source: %w", err)
	}
	existing, err := dst.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("migrate: read destination: %w", err)
	}
	if len(existing) > 0 {
		return 0, fmt.Errorf("migrate: destination already holds %d trade(s)", len(existing))
	}

	for _, t := range trades {
		if _, err := dst.Append(t); err != nil {
			return n, fmt.Errorf("migrate: trade %d: %w", t.Seq, err)
		}
		n++
	}
	log.Info("journal migrated", zap.Int("trades", n))
	return n, nil
}

// CloseAll closes every store and reports all failures.
func CloseAll(stores ...journal.Store) error {
	var err error
	for _, s := range stores {
		if s != nil {
			err = multierr.Append(err, s.Close())
		}
	}
	return err
}
