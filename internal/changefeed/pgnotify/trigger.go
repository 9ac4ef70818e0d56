package pgnotify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// rowImage projects the columns the change handlers read. Free-text
// columns stay out so the payload is far below the 8000 byte NOTIFY limit.
const rowImage = `json_build_object(
		            'id', %[1]s.id,
		            'request_id', %[1]s.request_id,
		            'donor_id', %[1]s.donor_id,
		            'status', %[1]s.status,
		            'matched_at', %[1]s.matched_at,
		            'responded_at', %[1]s.responded_at
		        )`

// triggerFunction returns the notify_match_change function publishing on
// channel.
func triggerFunction(channel string) string {
	return fmt.Sprintf(`
		CREATE OR REPLACE FUNCTION notify_match_change() RETURNS trigger AS $$
		BEGIN
		    PERFORM pg_notify(%s, json_build_object(
		        'schema', TG_TABLE_SCHEMA,
		        'table', TG_TABLE_NAME,
		        'eventType', TG_OP,
		        'commit_timestamp', now(),
		        'new', CASE WHEN TG_OP = 'DELETE' THEN NULL ELSE %s END,
		        'old', CASE WHEN TG_OP = 'INSERT' THEN NULL ELSE %s END
		    )::text);
		    RETURN NULL;
		END;
		$$ LANGUAGE plpgsql;
    `, pq.QuoteLiteral(channel), fmt.Sprintf(rowImage, "NEW"), fmt.Sprintf(rowImage, "OLD"))
}

// InstallTrigger creates or replaces the notify_match_change trigger
// function and attaches it to the matches table so that every row change
// is published on channel.
func InstallTrigger(ctx context.Context, db execer, channel string) error {
	if _, err := db.ExecContext(ctx, triggerFunction(channel)); err != nil {
		return fmt.Errorf("failed to create trigger function: %w", err)
	}

	trigger := `
		DROP TRIGGER IF EXISTS matches_notify_change ON matches;
		CREATE TRIGGER matches_notify_change
		    AFTER INSERT OR UPDATE OR DELETE ON matches
		    FOR EACH ROW EXECUTE FUNCTION notify_match_change();
    `

	if _, err := db.ExecContext(ctx, trigger); err != nil {
		return fmt.Errorf("failed to create trigger: %w", err)
	}

	return nil
}
