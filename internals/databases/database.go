package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	depositModel "kostku_backend/internals/features/billing/deposits/model"
	invoiceModel "kostku_backend/internals/features/billing/invoices/model"
	meterModel "kostku_backend/internals/features/billing/meters/model"
	contractModel "kostku_backend/internals/features/kost/contracts/model"
	roomModel "kostku_backend/internals/features/kost/rooms/model"
	settingModel "kostku_backend/internals/features/kost/settings/model"
	tenantModel "kostku_backend/internals/features/kost/tenants/model"
)

var DB *gorm.DB

// ConnectDB membuka koneksi sesuai DB_DRIVER.
// Default: SQLite file lokal (embedded, satu file seperti nhatro.db lama).
// DB_DRIVER=postgres memakai DSN ala Supabase/PgBouncer.
func ConnectDB() {
	driver := configs.GetEnv("DB_DRIVER", "sqlite")

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "postgres":
		log.Println("🔌 Koneksi ke PostgreSQL...")
		sslmode := configs.GetEnv("DB_SSLMODE", "require")
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kostku&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), &gorm.Config{Logger: configs.NewGormLogger()})
	default:
		path := configs.GetEnv("KOST_DB_PATH", "kostku.db")
		log.Printf("🔌 Koneksi ke SQLite (%s)...", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: configs.NewGormLogger()})
	}

	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate membuat tabel bila belum ada dan menanam baris settings singleton.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&settingModel.SettingModel{},
		&roomModel.RoomModel{},
		&tenantModel.TenantModel{},
		&contractModel.ContractModel{},
		&meterModel.MeterReadingModel{},
		&invoiceModel.InvoiceModel{},
		&depositModel.DepositTransactionModel{},
	); err != nil {
		return err
	}

	// settings default (id=1), hanya saat pertama kali
	var count int64
	if err := db.Model(&settingModel.SettingModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(settingModel.DefaultSetting()).Error; err != nil {
			return err
		}
		log.Println("✅ Settings default ditanam.")
	}
	return nil
}
