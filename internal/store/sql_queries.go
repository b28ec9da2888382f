package store

const (
	createNote = `INSERT INTO notes (id, alias, owner_id, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, alias, owner_id, content, created_at;`

	createRevision = `INSERT INTO revisions (note_id, seq, content, patch)
    VALUES ($1, $2, $3, $4);`

	findNoteByID = `SELECT id, alias, owner_id, content, created_at
    FROM notes
    WHERE id = $1;`

	findNoteByAlias = `SELECT id, alias, owner_id, content, created_at
    FROM notes
    WHERE alias = $1;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1;`

	listRevisionMetadata = `SELECT seq, length(content), created_at
    FROM revisions
    WHERE note_id = $1
    ORDER BY seq ASC;`

	getRevision = `SELECT note_id, seq, content, patch, created_at
    FROM revisions
    WHERE note_id = $1 AND seq = $2;`

	removeNoteFromUpload = `UPDATE media_uploads
    SET note_id = NULL
    WHERE id = $1;`

	deleteUploadMetadata = `DELETE FROM media_uploads
    WHERE id = $1;`

	touchHistoryEntry = `INSERT INTO history_entries (user_id, note_id, last_visited_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, note_id)
    DO UPDATE SET last_visited_at = EXCLUDED.last_visited_at;`

	findUserByID = `SELECT user_id, username, name, created_at
    FROM users
    WHERE user_id = $1;`
)
