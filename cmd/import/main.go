// Command import loads CSV fixtures into the database. Files are read from a
// fixture directory (default ./fixtures) in dependency order so foreign keys
// resolve: categories and genres first, then users, titles, the title-genre
// links, reviews, and comments.
//
// Expected files and columns:
//
//	category.csv     id,name,slug
//	genre.csv        id,name,slug
//	users.csv        id,username,email,role,bio,first_name,last_name
//	titles.csv       id,name,year,category
//	genre_title.csv  id,title_id,genre_id
//	review.csv       id,title_id,text,author,score,pub_date
//	comments.csv     id,review_id,text,author,pub_date
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"titlehub/internal/config"
	"titlehub/internal/database"
	"titlehub/internal/logger"
	"titlehub/internal/models"
)

func main() {
	log.Println("Starting fixture import...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dir := "fixtures"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	db, err := database.Connect(cfg, logger.New(cfg.LogLevel, cfg.LogFormat))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return importAll(tx, dir)
	}); err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Println("Import complete")
}

func importAll(tx *gorm.DB, dir string) error {
	categoryIDs, err := importCategories(tx, filepath.Join(dir, "category.csv"))
	if err != nil {
		return fmt.Errorf("import categories: %w", err)
	}
	log.Printf("Imported %d categories", len(categoryIDs))

	genreIDs, err := importGenres(tx, filepath.Join(dir, "genre.csv"))
	if err != nil {
		return fmt.Errorf("import genres: %w", err)
	}
	log.Printf("Imported %d genres", len(genreIDs))

	// CSV user ids are numeric; users get fresh UUIDs and the mapping is
	// kept so reviews and comments can reference their authors.
	userIDs, err := importUsers(tx, filepath.Join(dir, "users.csv"))
	if err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	log.Printf("Imported %d users", len(userIDs))

	titleCount, err := importTitles(tx, filepath.Join(dir, "titles.csv"), categoryIDs)
	if err != nil {
		return fmt.Errorf("import titles: %w", err)
	}
	log.Printf("Imported %d titles", titleCount)

	linkCount, err := importTitleGenres(tx, filepath.Join(dir, "genre_title.csv"), genreIDs)
	if err != nil {
		return fmt.Errorf("import title-genre links: %w", err)
	}
	log.Printf("Created %d title-genre links", linkCount)

	reviewCount, err := importReviews(tx, filepath.Join(dir, "review.csv"), userIDs)
	if err != nil {
		return fmt.Errorf("import reviews: %w", err)
	}
	log.Printf("Imported %d reviews", reviewCount)

	commentCount, err := importComments(tx, filepath.Join(dir, "comments.csv"), userIDs)
	if err != nil {
		return fmt.Errorf("import comments: %w", err)
	}
	log.Printf("Imported %d comments", commentCount)

	return nil
}

// readRows loads all data rows of a CSV file, skipping the header.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func importCategories(tx *gorm.DB, path string) (map[int64]int64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]int64, len(rows))
	for _, row := range rows {
		csvID, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, err
		}
		category := models.Category{ID: csvID, Name: row[1], Slug: row[2]}
		if err := tx.Create(&category).Error; err != nil {
			return nil, err
		}
		ids[csvID] = category.ID
	}
	return ids, nil
}

func importGenres(tx *gorm.DB, path string) (map[int64]int64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]int64, len(rows))
	for _, row := range rows {
		csvID, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, err
		}
		genre := models.Genre{ID: csvID, Name: row[1], Slug: row[2]}
		if err := tx.Create(&genre).Error; err != nil {
			return nil, err
		}
		ids[csvID] = genre.ID
	}
	return ids, nil
}

func importUsers(tx *gorm.DB, path string) (map[int64]string, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]string, len(rows))
	for _, row := range rows {
		csvID, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, err
		}
		role, ok := models.ParseRole(row[3])
		if !ok {
			return nil, fmt.Errorf("user %s: unknown role %q", row[1], row[3])
		}
		user := models.User{
			ID:        uuid.New().String(),
			Username:  row[1],
			Email:     row[2],
			Role:      role,
			Bio:       row[4],
			FirstName: row[5],
			LastName:  row[6],
		}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		ids[csvID] = user.ID
	}
	return ids, nil
}

func importTitles(tx *gorm.DB, path string, categoryIDs map[int64]int64) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return 0, err
		}
		year, err := strconv.Atoi(row[2])
		if err != nil {
			return 0, err
		}
		csvCategoryID, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return 0, err
		}
		categoryID, ok := categoryIDs[csvCategoryID]
		if !ok {
			return 0, fmt.Errorf("title %s: unknown category id %d", row[1], csvCategoryID)
		}

		title := models.Title{ID: id, Name: row[1], Year: year, CategoryID: &categoryID}
		if err := tx.Create(&title).Error; err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func importTitleGenres(tx *gorm.DB, path string, genreIDs map[int64]int64) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		titleID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return 0, err
		}
		csvGenreID, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return 0, err
		}
		genreID, ok := genreIDs[csvGenreID]
		if !ok {
			return 0, fmt.Errorf("title %d: unknown genre id %d", titleID, csvGenreID)
		}

		err = tx.Exec(
			"INSERT INTO title_genres (title_id, genre_id) VALUES (?, ?)",
			titleID, genreID,
		).Error
		if err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func importReviews(tx *gorm.DB, path string, userIDs map[int64]string) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return 0, err
		}
		titleID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return 0, err
		}
		csvAuthorID, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return 0, err
		}
		userID, ok := userIDs[csvAuthorID]
		if !ok {
			return 0, fmt.Errorf("review %d: unknown author id %d", id, csvAuthorID)
		}
		score, err := strconv.Atoi(row[4])
		if err != nil {
			return 0, err
		}
		pubDate, err := time.Parse(time.RFC3339, row[5])
		if err != nil {
			return 0, err
		}

		review := models.Review{
			ID:      id,
			TitleID: titleID,
			UserID:  userID,
			Text:    row[2],
			Score:   score,
			PubDate: pubDate,
		}
		if err := tx.Create(&review).Error; err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func importComments(tx *gorm.DB, path string, userIDs map[int64]string) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return 0, err
		}
		reviewID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return 0, err
		}
		csvAuthorID, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return 0, err
		}
		userID, ok := userIDs[csvAuthorID]
		if !ok {
			return 0, fmt.Errorf("comment %d: unknown author id %d", id, csvAuthorID)
		}
		pubDate, err := time.Parse(time.RFC3339, row[4])
		if err != nil {
			return 0, err
		}

		comment := models.Comment{
			ID:       id,
			ReviewID: reviewID,
			UserID:   userID,
			Text:     row[2],
			PubDate:  pubDate,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
