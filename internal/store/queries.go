package store

// Creature queries
const (
	queryUpsertCreature = `
		INSERT INTO creatures (
			catalog_id, name, height, weight, base_experience, image_ref,
			tags, traits, base_stats, owner_ref, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (catalog_id) DO UPDATE SET
			name = excluded.name,
			height = excluded.height,
			weight = excluded.weight,
			base_experience = excluded.base_experience,
			image_ref = excluded.image_ref,
			tags = excluded.tags,
			traits = excluded.traits,
			base_stats = excluded.base_stats,
			owner_ref = excluded.owner_ref,
			updated_at = excluded.updated_at`

	// queryUpsertImportedCreature leaves owner_ref untouched on conflict.
	queryUpsertImportedCreature = `
		INSERT INTO creatures (
			catalog_id, name, height, weight, base_experience, image_ref,
			tags, traits, base_stats, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (catalog_id) DO UPDATE SET
			name = excluded.name,
			height = excluded.height,
			weight = excluded.weight,
			base_experience = excluded.base_experience,
			image_ref = excluded.image_ref,
			tags = excluded.tags,
			traits = excluded.traits,
			base_stats = excluded.base_stats,
			updated_at = excluded.updated_at`

	queryDeleteCreature = `DELETE FROM creatures WHERE catalog_id = ?`

	queryCreatureExists = `SELECT EXISTS (SELECT 1 FROM creatures WHERE catalog_id = ?)`
)

// Trainer queries
const (
	queryInsertTrainer = `
		INSERT INTO trainers (name, hometown, badge_count, bio, portrait_ref, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	queryUpdateTrainer = `
		UPDATE trainers
		SET name = ?, hometown = ?, badge_count = ?, bio = ?, portrait_ref = ?, updated_at = ?
		WHERE id = ?`

	queryUpsertTrainerByName = `
		INSERT INTO trainers (name, hometown, badge_count, bio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			hometown = excluded.hometown,
			badge_count = excluded.badge_count,
			bio = excluded.bio,
			updated_at = excluded.updated_at`

	queryDeleteTrainer = `DELETE FROM trainers WHERE id = ?`
)

// Roster queries
const (
	// queryInsertRosterSlot only inserts while the roster is below capacity,
	// so the check and the write are a single atomic statement.
	queryInsertRosterSlot = `
		INSERT INTO roster_slots (catalog_id, nickname, role, notes, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE (SELECT COUNT(*) FROM roster_slots) < ?`

	queryUpdateRosterSlot = `
		UPDATE roster_slots
		SET catalog_id = ?, nickname = ?, role = ?, notes = ?, updated_at = ?
		WHERE id = ?`

	queryDeleteRosterSlot = `DELETE FROM roster_slots WHERE id = ?`

	queryCountRosterSlots = `SELECT COUNT(*) FROM roster_slots`
)

// Tag queries
const (
	queryInsertTag = `
		INSERT INTO tags (name, color, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	queryUpdateTag = `
		UPDATE tags SET name = ?, color = ?, description = ?, updated_at = ?
		WHERE id = ?`

	queryUpsertTagByName = `
		INSERT INTO tags (name, color, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			color = excluded.color,
			description = excluded.description,
			updated_at = excluded.updated_at`

	queryDeleteTag = `DELETE FROM tags WHERE id = ?`
)
