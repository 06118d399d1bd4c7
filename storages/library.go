package storages

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/reusee/tapecode/programs"
	"lukechampine.com/blake3"
)

var ErrNotFound = errors.New("program not found")

type Entry struct {
	Name    string           `db:"name"`
	ID      string           `db:"id"`
	Source  string           `db:"source"`
	Program programs.Program `db:"program"`
	// unix nanoseconds
	CreatedAt int64 `db:"created_at"`
}

func (e Entry) Created() time.Time {
	return time.Unix(0, e.CreatedAt)
}

// ProgramID is the hex blake3 sum of program.
func ProgramID(program programs.Program) string {
	sum := blake3.Sum256([]byte(program))
	return hex.EncodeToString(sum[:])
}

// Library stores named programs together with the text they were encoded from.
type Library struct {
	db *sqlx.DB
}

func NewLibrary(db *sqlx.DB) *Library {
	return &Library{
		db: db,
	}
}

// Save stores program under name, replacing any program of the same name.
func (l *Library) Save(ctx context.Context, name string, source string, program programs.Program) (Entry, error) {
	return DoTx1(ctx, l.db, func(tx *sqlx.Tx) (Entry, error) {
		entry := Entry{
			Name:      name,
			ID:        ProgramID(program),
			Source:    source,
			Program:   program,
			CreatedAt: time.Now().UnixNano(),
		}
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO programs (name, id, source, program, created_at)
			VALUES (:name, :id, :source, :program, :created_at)
			ON CONFLICT(name) DO UPDATE SET
				id = excluded.id,
				source = excluded.source,
				program = excluded.program,
				created_at = excluded.created_at`, entry); err != nil {
			return Entry{}, err
		}
		return entry, nil
	})
}

func (l *Library) Load(ctx context.Context, name string) (ret Entry, err error) {
	if err := l.db.GetContext(ctx, &ret, `SELECT * FROM programs WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Entry{}, err
	}
	return ret, nil
}

// LoadByID returns the entries whose program has the given id.
func (l *Library) LoadByID(ctx context.Context, id string) (ret []Entry, err error) {
	err = l.db.SelectContext(ctx, &ret, `SELECT * FROM programs WHERE id = ? ORDER BY name`, id)
	return
}

// List returns all entries ordered by name.
func (l *Library) List(ctx context.Context) (ret []Entry, err error) {
	err = l.db.SelectContext(ctx, &ret, `SELECT * FROM programs ORDER BY name`)
	return
}

func (l *Library) Delete(ctx context.Context, name string) error {
	return DoTx(ctx, l.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM programs WHERE name = ?`, name)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil
	})
}

func (l *Library) Close() error {
	return l.db.Close()
}
