package db

import (
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Staff{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AppointmentServiceItem{},
		&models.Review{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	ensureNoOverlapConstraint(db)

	return db
}

// gorm mapeia time.Time para timestamptz, então o range é tstzrange.
// tstzrange é meio-aberto: encostar na borda não viola.
const noOverlapConstraintDDL = `
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_staff_no_overlap
        EXCLUDE USING gist (
            staff_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed', 'completed'))
    `

// Backstop no banco: mesmo que a checagem da aplicação falhe sob
// concorrência, duas reservas ativas do mesmo profissional nunca
// podem se sobrepor. Sem a constraint o banco aceitaria double
// booking, então subir sem ela não é opção.
func ensureNoOverlapConstraint(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to enable btree_gist: %v", err)
	}

	if db.Migrator().HasConstraint(&models.Appointment{}, "appointments_staff_no_overlap") {
		return
	}

	if err := db.Exec(noOverlapConstraintDDL).Error; err != nil {
		log.Fatalf("failed to create exclusion constraint: %v", err)
	}
}

func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, notifications will not be published: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
