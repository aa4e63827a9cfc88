package database

import (
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"tcb/models"
)

// allModels lists every persisted entity in dependency order.
func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Textbook{},
		&models.Section{},
		&models.MediaItem{},
		&models.DocumentChunk{},
		&models.ChatSession{},
		&models.FaqCacheEntry{},
		&models.SharedPrompt{},
		&models.Job{},
		&models.PromptTemplate{},
		&models.GuidedPromptQuestion{},
	}
}

// AutoMigrateAll creates or updates every table. Production reaches it
// through the migration chain; tests call it directly against sqlite.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(allModels()...)
}

// RunMigrations applies the sequential migration chain. Each step is
// reversible; the seed step is idempotent via the unique template name.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "001_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				return AutoMigrateAll(tx)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"guided_prompt_questions", "prompt_templates", "jobs",
					"shared_user_prompts", "faq_cache", "chat_sessions",
					"document_chunks", "media_items", "sections",
					"textbooks", "users",
				)
			},
		},
		{
			// Earlier deployments created child foreign keys without ON
			// DELETE CASCADE; rewire them so removing a textbook removes
			// its whole subtree.
			ID: "002_cascade_deletes",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE media_items DROP CONSTRAINT IF EXISTS fk_media_items_textbook;
					ALTER TABLE sections DROP CONSTRAINT IF EXISTS fk_sections_textbook;
					ALTER TABLE sections DROP CONSTRAINT IF EXISTS fk_sections_parent;
					ALTER TABLE document_chunks DROP CONSTRAINT IF EXISTS fk_document_chunks_textbook;
					ALTER TABLE chat_sessions DROP CONSTRAINT IF EXISTS fk_chat_sessions_textbook;
					ALTER TABLE faq_cache DROP CONSTRAINT IF EXISTS fk_faq_cache_textbook;
					ALTER TABLE shared_user_prompts DROP CONSTRAINT IF EXISTS fk_shared_user_prompts_textbook;

					ALTER TABLE media_items ADD CONSTRAINT fk_media_items_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
					ALTER TABLE sections ADD CONSTRAINT fk_sections_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
					ALTER TABLE sections ADD CONSTRAINT fk_sections_parent
						FOREIGN KEY (parent_section_id) REFERENCES sections(id) ON DELETE CASCADE;
					ALTER TABLE document_chunks ADD CONSTRAINT fk_document_chunks_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
					ALTER TABLE chat_sessions ADD CONSTRAINT fk_chat_sessions_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
					ALTER TABLE faq_cache ADD CONSTRAINT fk_faq_cache_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
					ALTER TABLE shared_user_prompts ADD CONSTRAINT fk_shared_user_prompts_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE media_items DROP CONSTRAINT IF EXISTS fk_media_items_textbook;
					ALTER TABLE sections DROP CONSTRAINT IF EXISTS fk_sections_textbook;
					ALTER TABLE sections DROP CONSTRAINT IF EXISTS fk_sections_parent;
					ALTER TABLE document_chunks DROP CONSTRAINT IF EXISTS fk_document_chunks_textbook;
					ALTER TABLE chat_sessions DROP CONSTRAINT IF EXISTS fk_chat_sessions_textbook;
					ALTER TABLE faq_cache DROP CONSTRAINT IF EXISTS fk_faq_cache_textbook;
					ALTER TABLE shared_user_prompts DROP CONSTRAINT IF EXISTS fk_shared_user_prompts_textbook;
				`).Error
			},
		},
		{
			// A job may be created before its textbook exists (new
			// ingestion); the reference is backfilled by the pipeline.
			ID: "003_jobs_textbook_nullable",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE jobs ALTER COLUMN textbook_id DROP NOT NULL;
					ALTER TABLE jobs DROP CONSTRAINT IF EXISTS fk_jobs_textbook;
					ALTER TABLE jobs ADD CONSTRAINT fk_jobs_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE jobs DROP CONSTRAINT IF EXISTS fk_jobs_textbook;
					ALTER TABLE jobs ALTER COLUMN textbook_id SET NOT NULL;
					ALTER TABLE jobs ADD CONSTRAINT fk_jobs_textbook
						FOREIGN KEY (textbook_id) REFERENCES textbooks(id) ON DELETE CASCADE;
				`).Error
			},
		},
		{
			ID: "004_seed_prompt_templates",
			Migrate: func(tx *gorm.DB) error {
				return SeedPromptTemplates(tx)
			},
			Rollback: func(tx *gorm.DB) error {
				names := seededTemplateNames()
				if err := tx.Exec(`
					DELETE FROM guided_prompt_questions WHERE prompt_template_id IN
						(SELECT id FROM prompt_templates WHERE name IN ?)`, names).Error; err != nil {
					return err
				}
				return tx.Where("name IN ?", names).Delete(&models.PromptTemplate{}).Error
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
