package mockapi

import (
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/visionpay/fieldops/pkg/walker"
)

// SQLiteStore persists the mock dataset using modernc.org/sqlite so demo
// data survives restarts. Risk zones are regenerated at startup and never
// stored.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "mockapi: sqlite open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "mockapi: sqlite exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS officers (
	id                INTEGER PRIMARY KEY,
	name              TEXT NOT NULL,
	lat               REAL NOT NULL,
	lng               REAL NOT NULL,
	members_assigned  INTEGER NOT NULL DEFAULT 0,
	collections_today INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS members (
	id             INTEGER PRIMARY KEY,
	name           TEXT NOT NULL,
	lat            REAL NOT NULL,
	lng            REAL NOT NULL,
	amount         REAL NOT NULL,
	payment_status TEXT NOT NULL DEFAULT 'pending',
	officer_id     INTEGER NOT NULL DEFAULT 0,
	payment_date   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS stats (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	total_members   INTEGER NOT NULL,
	paid_today      INTEGER NOT NULL,
	overdue_members INTEGER NOT NULL,
	total_collected REAL NOT NULL,
	collection_rate REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_members_officer_id ON members(officer_id);
`

// Migrate creates the schema.
func (s *SQLiteStore) Migrate() error {
	_, err := s.db.Exec(migration)
	return eris.Wrap(err, "mockapi: sqlite migrate")
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertOfficer persists one officer.
func (s *SQLiteStore) InsertOfficer(o walker.Officer) error {
	_, err := s.db.Exec(
		`INSERT INTO officers (id, name, lat, lng, members_assigned, collections_today) VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Location.Lat, o.Location.Lng, o.MembersAssigned, o.CollectionsToday,
	)
	return eris.Wrapf(err, "mockapi: sqlite insert officer %d", o.ID)
}

// InsertMember persists one member.
func (s *SQLiteStore) InsertMember(m walker.Member) error {
	_, err := s.db.Exec(
		`INSERT INTO members (id, name, lat, lng, amount, payment_status, officer_id, payment_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Location.Lat, m.Location.Lng, m.Amount, string(m.PaymentStatus), m.OfficerID, m.PaymentDate,
	)
	return eris.Wrapf(err, "mockapi: sqlite insert member %d", m.ID)
}

// UpdateOfficerCounters writes an officer's load counters.
func (s *SQLiteStore) UpdateOfficerCounters(o walker.Officer) error {
	_, err := s.db.Exec(
		`UPDATE officers SET members_assigned = ?, collections_today = ? WHERE id = ?`,
		o.MembersAssigned, o.CollectionsToday, o.ID,
	)
	return eris.Wrapf(err, "mockapi: sqlite update officer %d", o.ID)
}

// UpdateMemberAssignment writes a member's officer assignment.
func (s *SQLiteStore) UpdateMemberAssignment(memberID, officerID int) error {
	_, err := s.db.Exec(`UPDATE members SET officer_id = ? WHERE id = ?`, officerID, memberID)
	return eris.Wrapf(err, "mockapi: sqlite assign member %d", memberID)
}

// UpdateMemberPayment marks a member paid on the given date.
func (s *SQLiteStore) UpdateMemberPayment(memberID int, paidOn string) error {
	_, err := s.db.Exec(
		`UPDATE members SET payment_status = ?, payment_date = ? WHERE id = ?`,
		string(walker.PaymentPaid), paidOn, memberID,
	)
	return eris.Wrapf(err, "mockapi: sqlite pay member %d", memberID)
}

// SaveStats writes the single headline-stats row.
func (s *SQLiteStore) SaveStats(st walker.Stats) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (id, total_members, paid_today, overdue_members, total_collected, collection_rate)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			total_members = excluded.total_members,
			paid_today = excluded.paid_today,
			overdue_members = excluded.overdue_members,
			total_collected = excluded.total_collected,
			collection_rate = excluded.collection_rate`,
		st.TotalMembers, st.PaidToday, st.OverdueMembers, st.TotalCollected, st.CollectionRate,
	)
	return eris.Wrap(err, "mockapi: sqlite save stats")
}

func (s *SQLiteStore) loadOfficers() ([]walker.Officer, error) {
	rows, err := s.db.Query(`SELECT id, name, lat, lng, members_assigned, collections_today FROM officers ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "mockapi: sqlite load officers")
	}
	defer rows.Close()

	var out []walker.Officer
	for rows.Next() {
		var o walker.Officer
		if err := rows.Scan(&o.ID, &o.Name, &o.Location.Lat, &o.Location.Lng, &o.MembersAssigned, &o.CollectionsToday); err != nil {
			return nil, eris.Wrap(err, "mockapi: sqlite scan officer")
		}
		out = append(out, o)
	}
	return out, eris.Wrap(rows.Err(), "mockapi: sqlite load officers")
}

func (s *SQLiteStore) loadMembers() ([]walker.Member, error) {
	rows, err := s.db.Query(`SELECT id, name, lat, lng, amount, payment_status, officer_id, payment_date FROM members ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "mockapi: sqlite load members")
	}
	defer rows.Close()

	var out []walker.Member
	for rows.Next() {
		var m walker.Member
		var status string
		if err := rows.Scan(&m.ID, &m.Name, &m.Location.Lat, &m.Location.Lng, &m.Amount, &status, &m.OfficerID, &m.PaymentDate); err != nil {
			return nil, eris.Wrap(err, "mockapi: sqlite scan member")
		}
		m.PaymentStatus = walker.PaymentStatus(status)
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "mockapi: sqlite load members")
}

func (s *SQLiteStore) loadStats() (walker.Stats, bool, error) {
	var st walker.Stats
	err := s.db.QueryRow(
		`SELECT total_members, paid_today, overdue_members, total_collected, collection_rate FROM stats WHERE id = 1`,
	).Scan(&st.TotalMembers, &st.PaidToday, &st.OverdueMembers, &st.TotalCollected, &st.CollectionRate)
	if err == sql.ErrNoRows {
		return walker.Stats{}, false, nil
	}
	if err != nil {
		return walker.Stats{}, false, eris.Wrap(err, "mockapi: sqlite load stats")
	}
	return st, true, nil
}

// NewPersistentDataset opens the dataset backed by a SQLite file. An empty
// database is seeded with the demo fixtures; otherwise the stored rows win.
func NewPersistentDataset(dsn string) (*Dataset, error) {
	store, err := NewSQLite(dsn)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, err
	}

	d := NewDataset()
	d.store = store

	officers, err := store.loadOfficers()
	if err != nil {
		store.Close()
		return nil, err
	}

	if len(officers) == 0 {
		// Fresh database: persist the seed fixtures.
		for _, o := range d.officers {
			if err := store.InsertOfficer(o); err != nil {
				store.Close()
				return nil, err
			}
		}
		for _, m := range d.members {
			if err := store.InsertMember(m); err != nil {
				store.Close()
				return nil, err
			}
		}
		if err := store.SaveStats(d.stats); err != nil {
			store.Close()
			return nil, err
		}
		return d, nil
	}

	members, err := store.loadMembers()
	if err != nil {
		store.Close()
		return nil, err
	}
	stats, ok, err := store.loadStats()
	if err != nil {
		store.Close()
		return nil, err
	}

	d.officers = officers
	d.members = members
	if ok {
		d.stats = stats
	}
	return d, nil
}

// Close releases the backing store, if any.
func (d *Dataset) Close() error {
	if d.store == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.store.SaveStats(d.stats); err != nil {
		d.store.Close()
		return err
	}
	return d.store.Close()
}
