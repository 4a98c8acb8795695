package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/xhd2015/studentlib/data/seed"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/models"
)

type SQLiteStore struct {
	db *sqlx.DB
}

var _ storage.LibraryService = (*SQLiteStore)(nil)

func New(filePath string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			author TEXT NOT NULL,
			subject TEXT NOT NULL,
			class TEXT NOT NULL,
			thumbnail TEXT NOT NULL DEFAULT '',
			last_viewed TEXT NOT NULL DEFAULT '',
			uploaded_at TEXT NOT NULL DEFAULT '',
			views INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS topics (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			posts INTEGER NOT NULL DEFAULT 0,
			last_post_by TEXT NOT NULL DEFAULT '',
			last_post_time TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS threads (
			list TEXT NOT NULL,
			position INTEGER NOT NULL,
			id INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			category TEXT NOT NULL,
			replies INTEGER NOT NULL DEFAULT 0,
			views INTEGER NOT NULL DEFAULT 0,
			votes INTEGER NOT NULL DEFAULT 0,
			date_posted TEXT NOT NULL DEFAULT '',
			last_reply TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (list, id)
		);`,
		`CREATE TABLE IF NOT EXISTS plans (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			subject TEXT NOT NULL,
			deadline TEXT NOT NULL,
			progress INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS plan_tasks (
			plan_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			id INTEGER NOT NULL,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			duration TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL,
			PRIMARY KEY (plan_id, id),
			FOREIGN KEY (plan_id) REFERENCES plans(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS schedule_tasks (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			subject TEXT NOT NULL,
			duration TEXT NOT NULL DEFAULT '',
			time TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			subject TEXT NOT NULL
		);`,
	}
	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const seededKey = "seeded"

func (s *SQLiteStore) seeded(ctx context.Context) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM meta WHERE key = ?", seededKey)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type taskRow struct {
	PlanID   int64 `db:"plan_id"`
	Position int   `db:"position"`
	models.Task
}

// Load returns the seed library until the first Save
func (s *SQLiteStore) Load(ctx context.Context) (*models.Library, error) {
	ok, err := s.seeded(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	if !ok {
		return seed.Library(), nil
	}

	lib := &models.Library{}
	queries := []struct {
		dest  any
		query string
		args  []any
	}{
		{&lib.Resources, "SELECT id, title, type, author, subject, class, thumbnail, last_viewed, uploaded_at, views FROM resources ORDER BY position", nil},
		{&lib.Topics, "SELECT id, title, description, category, posts, last_post_by, last_post_time FROM topics ORDER BY position", nil},
		{&lib.RecentThreads, threadQuery, []any{string(models.ThreadList_Recent)}},
		{&lib.PopularThreads, threadQuery, []any{string(models.ThreadList_Popular)}},
		{&lib.Plans, "SELECT id, title, subject, deadline, progress FROM plans ORDER BY position", nil},
		{&lib.Schedule, "SELECT id, title, subject, duration, time, completed FROM schedule_tasks ORDER BY position", nil},
		{&lib.Reminders, "SELECT id, title, date, subject FROM reminders ORDER BY position", nil},
	}
	for _, q := range queries {
		if err := s.db.SelectContext(ctx, q.dest, q.query, q.args...); err != nil {
			return nil, fmt.Errorf("failed to load library: %w", err)
		}
	}

	var tasks []taskRow
	err = s.db.SelectContext(ctx, &tasks, "SELECT plan_id, position, id, title, completed, duration, priority FROM plan_tasks ORDER BY plan_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to load plan tasks: %w", err)
	}
	byPlan := make(map[int64][]models.Task, len(lib.Plans))
	for _, row := range tasks {
		byPlan[row.PlanID] = append(byPlan[row.PlanID], row.Task)
	}
	for i := range lib.Plans {
		lib.Plans[i].Tasks = byPlan[lib.Plans[i].ID]
		if lib.Plans[i].Tasks == nil {
			lib.Plans[i].Tasks = []models.Task{}
		}
	}
	return lib, nil
}

const threadQuery = "SELECT id, title, author, category, replies, views, votes, date_posted, last_reply FROM threads WHERE list = ? ORDER BY position"

// Save replaces every table in a single transaction
func (s *SQLiteStore) Save(ctx context.Context, lib *models.Library) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"plan_tasks", "plans", "resources", "topics", "threads", "schedule_tasks", "reminders"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, r := range lib.Resources {
		_, err = tx.ExecContext(ctx, `INSERT INTO resources (id, position, title, type, author, subject, class, thumbnail, last_viewed, uploaded_at, views)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Title, string(r.Type), r.Author, r.Subject, r.Class, r.Thumbnail, r.LastViewed, r.UploadedAt, r.Views)
		if err != nil {
			return fmt.Errorf("failed to insert resource %d: %w", r.ID, err)
		}
	}
	for i, t := range lib.Topics {
		_, err = tx.ExecContext(ctx, `INSERT INTO topics (id, position, title, description, category, posts, last_post_by, last_post_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Title, t.Description, t.Category, t.Posts, t.LastPostBy, t.LastPostTime)
		if err != nil {
			return fmt.Errorf("failed to insert topic %d: %w", t.ID, err)
		}
	}
	for _, list := range []models.ThreadList{models.ThreadList_Recent, models.ThreadList_Popular} {
		for i, t := range lib.Threads(list) {
			_, err = tx.ExecContext(ctx, `INSERT INTO threads (list, position, id, title, author, category, replies, views, votes, date_posted, last_reply)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				string(list), i, t.ID, t.Title, t.Author, t.Category, t.Replies, t.Views, t.Votes, t.DatePosted, t.LastReply)
			if err != nil {
				return fmt.Errorf("failed to insert %s thread %d: %w", list, t.ID, err)
			}
		}
	}
	for i, p := range lib.Plans {
		_, err = tx.ExecContext(ctx, `INSERT INTO plans (id, position, title, subject, deadline, progress) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Subject, p.Deadline, p.Progress)
		if err != nil {
			return fmt.Errorf("failed to insert plan %d: %w", p.ID, err)
		}
		for j, task := range p.Tasks {
			_, err = tx.ExecContext(ctx, `INSERT INTO plan_tasks (plan_id, position, id, title, completed, duration, priority) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID, j, task.ID, task.Title, task.Completed, task.Duration, string(task.Priority))
			if err != nil {
				return fmt.Errorf("failed to insert task %d of plan %d: %w", task.ID, p.ID, err)
			}
		}
	}
	for i, t := range lib.Schedule {
		_, err = tx.ExecContext(ctx, `INSERT INTO schedule_tasks (id, position, title, subject, duration, time, completed) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Title, t.Subject, t.Duration, t.Time, t.Completed)
		if err != nil {
			return fmt.Errorf("failed to insert schedule task %d: %w", t.ID, err)
		}
	}
	for i, r := range lib.Reminders {
		_, err = tx.ExecContext(ctx, `INSERT INTO reminders (id, position, title, date, subject) VALUES (?, ?, ?, ?, ?)`,
			r.ID, i, r.Title, r.Date, r.Subject)
		if err != nil {
			return fmt.Errorf("failed to insert reminder %d: %w", r.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, "INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", seededKey, "1")
	if err != nil {
		return fmt.Errorf("failed to write meta: %w", err)
	}

	return tx.Commit()
}
