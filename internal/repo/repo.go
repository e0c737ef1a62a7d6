package repo

import (
	"context"
	"database/sql"
	"time"
)

type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	AvatarURL    string     `json:"avatar_url"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error
	UpdateAvatar(ctx context.Context, id int, path string) error
	SetPremium(ctx context.Context, id int, until time.Time) error
	ClearPremium(ctx context.Context, id int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (*Profile, error) {
	query := `SELECT id, login, email,
		COALESCE(description, ''), COALESCE(avatar_url, ''), premium_until
		FROM users WHERE id=$1`

	var p Profile
	var until sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &p.Description, &p.AvatarURL, &until)
	if err != nil {
		return nil, err
	}
	if until.Valid {
		p.PremiumUntil = &until.Time
		p.IsPremium = time.Now().Before(until.Time)
	}
	return &p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, path string) error {
	query := "UPDATE users SET avatar_url=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, path)
	return err
}

func (r *PostgresUserRepository) SetPremium(ctx context.Context, id int, until time.Time) error {
	query := "UPDATE users SET premium_until=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, until)
	return err
}

func (r *PostgresUserRepository) ClearPremium(ctx context.Context, id int) error {
	query := "UPDATE users SET premium_until=NULL WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
