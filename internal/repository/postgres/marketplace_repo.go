package postgres

import (
	"context"
	"errors"
	"fmt"

	"gig-marketplace/internal/marketerrors"
	model "gig-marketplace/internal/models"
	"gig-marketplace/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// MarketplaceRepo is the Postgres implementation of repository.MarketplaceDB
type MarketplaceRepo struct {
	DB *pgxpool.Pool
}

// NewMarketplaceRepo creates a new Postgres-backed repository instance
func NewMarketplaceRepo(db *pgxpool.Pool) *MarketplaceRepo {
	return &MarketplaceRepo{DB: db}
}

const gigColumns = `id, owner_id, title, description, budget, status, created_at`
const bidColumns = `id, gig_id, freelancer_id, amount, message, status, created_at`

func scanGig(row pgx.Row) (model.Gig, error) {
	var gig model.Gig
	err := row.Scan(
		&gig.GigID,
		&gig.OwnerID,
		&gig.Title,
		&gig.Description,
		&gig.Budget,
		&gig.Status,
		&gig.CreatedAt,
	)
	return gig, err
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var bid model.Bid
	err := row.Scan(
		&bid.BidID,
		&bid.GigID,
		&bid.FreelancerID,
		&bid.Amount,
		&bid.Message,
		&bid.Status,
		&bid.CreatedAt,
	)
	return bid, err
}

// CreateGig inserts a new gig
func (r *MarketplaceRepo) CreateGig(ctx context.Context, gig model.Gig) error {
	insertQuery := `INSERT INTO gigs (id, owner_id, title, description, budget, status, created_at)
	                VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		gig.GigID,
		gig.OwnerID,
		gig.Title,
		gig.Description,
		gig.Budget,
		gig.Status,
		gig.CreatedAt)
	if err != nil {
		return fmt.Errorf("create gig %s: %w", gig.GigID, err)
	}
	return nil
}

// GetGig returns a gig by its identifier
func (r *MarketplaceRepo) GetGig(ctx context.Context, gigID string) (model.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`
	gig, err := scanGig(r.DB.QueryRow(ctx, query, gigID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// GetOpenGigs returns open gigs, newest first, optionally filtered by a
// case-insensitive title keyword
func (r *MarketplaceRepo) GetOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs
	          WHERE status = $1 AND ($2 = '' OR title ILIKE '%' || $2 || '%')
	          ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, model.GigOpen, keyword)
	if err != nil {
		return nil, fmt.Errorf("get open gigs: %w", err)
	}
	defer rows.Close()

	return collectGigs(rows)
}

// GetGigsByOwner returns all gigs posted by a user, newest first
func (r *MarketplaceRepo) GetGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get gigs for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectGigs(rows)
}

func collectGigs(rows pgx.Rows) ([]model.Gig, error) {
	gigs := make([]model.Gig, 0)
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, gig)
	}
	return gigs, rows.Err()
}

// CreateBid inserts a new bid. The referenced gig is locked for the duration
// of the insert so openness cannot change underneath it; the unique index on
// (gig_id, freelancer_id) enforces one bid per freelancer per gig.
func (r *MarketplaceRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, err)
	}
	defer tx.Rollback(ctx)

	var status model.GigStatus
	err = tx.QueryRow(ctx, `SELECT status FROM gigs WHERE id = $1 FOR SHARE`, bid.GigID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotFound)
	}
	if err != nil {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, err)
	}
	if status != model.GigOpen {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, marketerrors.ErrGigNotOpen)
	}

	insertQuery := `INSERT INTO bids (id, gig_id, freelancer_id, amount, message, status, created_at)
	                VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.Exec(
		ctx,
		insertQuery,
		bid.BidID,
		bid.GigID,
		bid.FreelancerID,
		bid.Amount,
		bid.Message,
		bid.Status,
		bid.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("create bid for gig %s by user %s: %w", bid.GigID, bid.FreelancerID, marketerrors.ErrDuplicateBid)
		}
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, err)
	}
	return nil
}

// GetBid returns a bid by its identifier
func (r *MarketplaceRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`
	bid, err := scanBid(r.DB.QueryRow(ctx, query, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetBidsByGig returns all bids placed on a gig
func (r *MarketplaceRepo) GetBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM gigs WHERE id = $1)`, gigID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, err)
	}
	if !exists {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, marketerrors.ErrGigNotFound)
	}

	query := `SELECT ` + bidColumns + ` FROM bids WHERE gig_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, gigID)
	if err != nil {
		return nil, fmt.Errorf("get bids for gig %s: %w", gigID, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

// GetBidsByFreelancer returns all bids placed by a user, newest first
func (r *MarketplaceRepo) GetBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE freelancer_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("get bids for freelancer %s: %w", freelancerID, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

func collectBids(rows pgx.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// HireBid performs the atomic hire transition in a single database
// transaction. The gig row is locked with FOR UPDATE before check runs, so
// concurrent hires on the same gig serialize and the loser re-reads a gig
// that is no longer open.
func (r *MarketplaceRepo) HireBid(ctx context.Context, bidID string, check repository.HireCheck) (model.Gig, model.Bid, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}
	defer tx.Rollback(ctx)

	bidQuery := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`
	bid, err := scanBid(tx.QueryRow(ctx, bidQuery, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}

	gigQuery := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1 FOR UPDATE`
	gig, err := scanGig(tx.QueryRow(ctx, gigQuery, bid.GigID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, marketerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}

	if check != nil {
		if err := check(gig, bid); err != nil {
			return model.Gig{}, model.Bid{}, err
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE gigs SET status = $1 WHERE id = $2`, model.GigAssigned, gig.GigID); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}
	if _, err := tx.Exec(ctx, `UPDATE bids SET status = $1 WHERE id = $2`, model.BidHired, bid.BidID); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}
	if _, err := tx.Exec(ctx, `UPDATE bids SET status = $1 WHERE gig_id = $2 AND id <> $3`, model.BidRejected, gig.GigID, bid.BidID); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, err)
	}

	gig.Status = model.GigAssigned
	bid.Status = model.BidHired
	return gig, bid, nil
}
