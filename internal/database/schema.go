package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema contains the idempotent table definitions for every collection the
// backend persists.  The original deployment ran on a document store that
// created collections implicitly; CREATE TABLE IF NOT EXISTS preserves that
// zero-setup behavior on MySQL.
//
// admins.email carries a UNIQUE index so concurrent registrations with the
// same address cannot both commit; the application-level duplicate check
// exists only to produce a friendly 409 without a round-trip failure.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id           VARCHAR(36)  NOT NULL PRIMARY KEY,
		email        VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name         VARCHAR(255) NOT NULL,
		role         VARCHAR(32)  NOT NULL DEFAULT 'admin',
		is_active    TINYINT(1)   NOT NULL DEFAULT 1,
		created_at   DATETIME     NOT NULL,
		UNIQUE KEY uq_admins_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS services (
		id           VARCHAR(36)  NOT NULL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		description  TEXT         NOT NULL,
		icon         VARCHAR(64)  NOT NULL,
		capabilities JSON         NOT NULL,
		tools        JSON         NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS case_studies (
		id           VARCHAR(36)  NOT NULL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		industry     VARCHAR(128) NOT NULL,
		challenge    TEXT         NOT NULL,
		solution     TEXT         NOT NULL,
		results      TEXT         NOT NULL,
		image        VARCHAR(512) NOT NULL,
		technologies JSON         NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS blog_posts (
		id       VARCHAR(36)  NOT NULL PRIMARY KEY,
		slug     VARCHAR(255) NOT NULL,
		title    VARCHAR(255) NOT NULL,
		excerpt  TEXT         NOT NULL,
		content  MEDIUMTEXT   NOT NULL,
		image    VARCHAR(512) NOT NULL,
		date     VARCHAR(32)  NOT NULL,
		author   VARCHAR(255) NOT NULL,
		category VARCHAR(128) NOT NULL,
		UNIQUE KEY uq_blog_posts_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id       VARCHAR(36)  NOT NULL PRIMARY KEY,
		name     VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		bio      TEXT         NOT NULL,
		image    VARCHAR(512) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS testimonials (
		id      VARCHAR(36)  NOT NULL PRIMARY KEY,
		name    VARCHAR(255) NOT NULL,
		role    VARCHAR(255) NOT NULL,
		company VARCHAR(255) NOT NULL,
		content TEXT         NOT NULL,
		rating  TINYINT      NOT NULL DEFAULT 5,
		avatar  VARCHAR(512) NOT NULL DEFAULT ''
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS partners (
		id          VARCHAR(36)  NOT NULL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		logo_url    VARCHAR(512) NOT NULL,
		website     VARCHAR(512) NOT NULL DEFAULT '',
		description TEXT         NOT NULL,
		is_active   TINYINT(1)   NOT NULL DEFAULT 1
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id               VARCHAR(36)  NOT NULL PRIMARY KEY,
		title            VARCHAR(255) NOT NULL,
		department       VARCHAR(128) NOT NULL,
		location         VARCHAR(255) NOT NULL,
		type             VARCHAR(64)  NOT NULL,
		salary           VARCHAR(128) NOT NULL DEFAULT '',
		description      TEXT         NOT NULL,
		requirements     JSON         NOT NULL,
		responsibilities JSON         NOT NULL,
		benefits         JSON         NOT NULL,
		is_active        TINYINT(1)   NOT NULL DEFAULT 1,
		created_at       DATETIME     NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS job_applications (
		id           VARCHAR(36)  NOT NULL PRIMARY KEY,
		job_id       VARCHAR(36)  NOT NULL,
		job_title    VARCHAR(255) NOT NULL,
		name         VARCHAR(255) NOT NULL,
		email        VARCHAR(255) NOT NULL,
		phone        VARCHAR(64)  NOT NULL DEFAULT '',
		resume_url   VARCHAR(512) NOT NULL DEFAULT '',
		cover_letter TEXT         NOT NULL,
		status       VARCHAR(32)  NOT NULL DEFAULT 'new',
		created_at   DATETIME     NOT NULL,
		KEY idx_job_applications_job (job_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id         VARCHAR(36)  NOT NULL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		email      VARCHAR(255) NOT NULL,
		company    VARCHAR(255) NOT NULL,
		message    TEXT         NOT NULL,
		created_at DATETIME     NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS subscribers (
		id         VARCHAR(36)  NOT NULL PRIMARY KEY,
		email      VARCHAR(255) NOT NULL,
		created_at DATETIME     NOT NULL,
		UNIQUE KEY uq_subscribers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
