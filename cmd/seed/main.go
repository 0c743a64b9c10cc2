package main

import (
	"log"
	"os"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the catalog masters with the stationery demo data set.
// Pass --refresh to drop and recreate the tables first.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	if hasFlag("--refresh") {
		log.Println("Refresh requested, dropping tables...")
		if err := db.Migrator().DropTable(
			&model.TransactionDetail{},
			&model.Transaction{},
			&model.LocalProduct{},
			&model.Product{},
		); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&model.Product{},
		&model.LocalProduct{},
		&model.Transaction{},
		&model.TransactionDetail{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	seedGlobalMaster(db)
	seedLocalMaster(db)

	log.Println("✅ Catalog seeding complete")
}

func hasFlag(name string) bool {
	for _, arg := range os.Args[1:] {
		if arg == name {
			return true
		}
	}
	return false
}

func seedGlobalMaster(db *gorm.DB) {
	var existing model.Product
	if err := db.First(&existing).Error; err == nil {
		log.Println("Global master already seeded, skipping")
		return
	}

	products := []model.Product{
		{ProductCode: "4901991654011", Name: "MONO消しゴム", Price: 100},
		{ProductCode: "4901991654028", Name: "MONO消しゴム 小", Price: 80},
		{ProductCode: "4901991654035", Name: "MONO消しゴム ブラック", Price: 120},
		{ProductCode: "4901991501018", Name: "ABTデュアルブラッシュペン 黒", Price: 350},
		{ProductCode: "4901991501025", Name: "ABTデュアルブラッシュペン 赤", Price: 350},
		{ProductCode: "4901991701012", Name: "MONOグラフ シャープペン 0.5mm", Price: 400},
		{ProductCode: "4901991701043", Name: "ZOOM シャープペン 0.5mm", Price: 600},
		{ProductCode: "4901991901016", Name: "MONO修正テープ 5mm", Price: 250},
		{ProductCode: "4901992001012", Name: "ピットのり スティックタイプ", Price: 180},
		{ProductCode: "4901992001029", Name: "ピットのり 液体タイプ", Price: 200},
	}
	for i := range products {
		products[i].CreatedBy = "seed"
		products[i].UpdatedBy = "seed"
	}

	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("❌ Failed to seed global master: %v", err)
	}
	log.Printf("Seeded %d products into the global master", len(products))
}

func seedLocalMaster(db *gorm.DB) {
	var existing model.LocalProduct
	if err := db.First(&existing).Error; err == nil {
		log.Println("Local master already seeded, skipping")
		return
	}

	products := []model.LocalProduct{
		{ProductCode: "4901992201016", Name: "【店舗限定】ABTデュアルブラッシュペン ゴールド", Price: 400},
		{ProductCode: "4901992201023", Name: "【店舗限定】MONOグラフ シャープペン 限定軸色", Price: 500},
		{ProductCode: "4901992201030", Name: "【店舗限定】ピットのり 限定デザイン", Price: 250},
	}
	for i := range products {
		products[i].CreatedBy = "seed"
		products[i].UpdatedBy = "seed"
	}

	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("❌ Failed to seed local master: %v", err)
	}
	log.Printf("Seeded %d products into the local master", len(products))
}
