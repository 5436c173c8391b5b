package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/shippy/shipment-tracker/internal/model"
)

const userColumns = "id,email,username,password,name,address,phone,usertype,created_at,updated_at"

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts the user and populates its timestamps. Uniqueness of
// email and username is enforced by the store's unique indexes; a losing
// racer gets ErrEmailExists or ErrUsernameExists depending on which
// index rejected the row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC().Truncate(time.Second)
	u.CreatedAt, u.UpdatedAt = now, now
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id,email,username,password,name,address,phone,usertype,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?,?)",
		u.ID, u.Email, u.Username, u.PasswordHash, u.Name, u.Address, u.Phone, string(u.Usertype), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isDuplicate(err, "email") {
			return ErrEmailExists
		}
		if isDuplicate(err, "username") {
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

// FindByEmailOrUsername returns the first user whose email or username
// matches. Email matches are preferred so that registration reports the
// email conflict when both values collide.
func (r *UserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? OR username=? ORDER BY email=? DESC LIMIT 1",
		email, username, email)
	return scanUser(row)
}

// GetByEmail fetches a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
	return scanUser(row)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	return scanUser(row)
}

// UpdateProfile applies a partial update of the mutable fields. A nil
// pointer leaves the column untouched; updated_at is always refreshed.
// The updated record is read back and returned.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, name, phone, address *string) (model.User, error) {
	sets := []string{"updated_at=?"}
	args := []any{time.Now().UTC().Truncate(time.Second)}
	if name != nil {
		sets = append(sets, "name=?")
		args = append(args, *name)
	}
	if phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, *phone)
	}
	if address != nil {
		sets = append(sets, "address=?")
		args = append(args, *address)
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, "UPDATE users SET "+strings.Join(sets, ",")+" WHERE id=?", args...)
	if err != nil {
		return model.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op update;
		// the read-back below settles which one it was.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.User{}, err
		}
	}
	return r.GetByID(ctx, id)
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var usertype string
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Name,
		&u.Address, &u.Phone, &usertype, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Usertype = model.UserType(usertype)
	return u, nil
}
