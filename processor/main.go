package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"rf-wms/config"
	"rf-wms/database"
	"rf-wms/models"
	"rf-wms/repositories"
	"rf-wms/services"
)

// Processor memproses file CSV dari host system (SAP/ERP) yang ditaruh di
// folder unprocessed. Nama file menentukan jenisnya: RCV_* berisi baris
// purchase order, STOCK_* berisi snapshot inventory.

type processor struct {
	db      *gorm.DB
	imports *services.ImportService
}

func newProcessor(db *gorm.DB) *processor {
	store := repositories.NewGormStore(db)
	repo := repositories.NewInventoryRepository(store)
	txns := repositories.NewTransactionRepository(store)
	bins := services.NewBinService(repo)
	receiving := services.NewReceivingService(repo, bins, txns)

	return &processor{
		db:      db,
		imports: services.NewImportService(repo, receiving),
	}
}

func (p *processor) checkUnprocessedFiles() {
	files, err := filepath.Glob(filepath.Join(config.WatchFolder, "*.csv"))
	if err != nil {
		log.Fatal("❌ Gagal membaca folder:", err)
	}

	for _, file := range files {
		fmt.Println("📂 Memproses file:", file)
		p.processFile(file)
	}
}

func (p *processor) processFile(filename string) {
	fileNameOnly := filepath.Base(filename)

	// Cek apakah file sudah pernah diproses
	var existing models.FileLog
	if err := p.db.Where("filename = ?", fileNameOnly).First(&existing).Error; err == nil {
		log.Println("⚠️ File sudah pernah diproses, skip:", filename)
		return
	}

	info, err := os.Stat(filename)
	if err != nil {
		fmt.Println("❌ Gagal membaca file:", err)
		return
	}

	file, err := os.Open(filename)
	if err != nil {
		fmt.Println("❌ Gagal membuka file:", err)
		return
	}
	rows, err := services.ParseCSV(file)
	file.Close()
	if err != nil {
		fmt.Println("❌ Gagal membaca file CSV:", err)
		return
	}

	var result *services.ImportResult
	switch {
	case strings.HasPrefix(fileNameOnly, "RCV_"):
		fmt.Println("📥 Processing Receiving File:", fileNameOnly)
		result, err = p.imports.ImportPurchaseOrderRows(rows)

	case strings.HasPrefix(fileNameOnly, "STOCK_"):
		fmt.Println("📦 Processing Inventory File:", fileNameOnly)
		result, err = p.imports.ImportInventory(rows)

	default:
		fmt.Println("⚠️ Unrecognized File:", fileNameOnly)
		return
	}
	if err != nil {
		fmt.Println("❌ Gagal memproses file:", err)
		return
	}

	p.db.Create(&models.FileLog{
		Filename:     fileNameOnly,
		DateModified: info.ModTime(),
		RowCount:     result.TotalRows,
		Status:       "processed",
	})
	fmt.Println("✅ File berhasil diproses & disimpan:", filename)

	if err := moveToProcessed(filename); err != nil {
		log.Fatalf("❌ Gagal memindahkan file ke folder processed: %v", err)
	}

	if len(config.ReportRecipients) > 0 {
		sendSummaryEmail(config.ReportRecipients, fileNameOnly, result)
	}
}

func moveToProcessed(filename string) error {
	if _, err := os.Stat(config.ProcessedFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(config.ProcessedFolder, os.ModePerm); err != nil {
			return err
		}
	}

	dst := filepath.Join(config.ProcessedFolder, filepath.Base(filename))
	if err := os.Rename(filename, dst); err != nil {
		fmt.Println("⚠️  Rename gagal, coba metode copy & delete...")
		return copyAndDeleteFile(filename, dst)
	}
	return nil
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err := io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	return os.Remove(src)
}

func sendSummaryEmail(toEmails []string, filename string, result *services.ImportResult) {
	subject := "📦 Import selesai: " + filename
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Import file %s selesai</h3>
				<p>Total baris: <strong>%d</strong></p>
				<p>Berhasil: <strong>%d</strong>, dilewati: <strong>%d</strong>, gagal: <strong>%d</strong></p>
				<p>Diproses pada %s.</p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, filename, result.TotalRows, result.SuccessCount, result.SkippedCount, result.ErrorCount,
		time.Now().Format("2006-01-02 15:04:05"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Gagal mengirim email:", err)
		return
	}

	fmt.Println("✅ Email notifikasi terkirim ke:", toEmails)
}

func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("❌ Gagal konek ke database: %v", err)
	}

	fmt.Println("🚀 Processor CSV berjalan...")

	p := newProcessor(db)
	p.checkUnprocessedFiles()

	fmt.Println("✅ Semua file CSV diproses!")
}
