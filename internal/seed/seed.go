package seed

import (
	"log/slog"
	"time"

	"github.com/peter-evance/bookspace/backend/internal/domain"
	"github.com/peter-evance/bookspace/backend/internal/repository"
)

type catalogBook struct {
	title           string
	description     string
	publicationYear int
	isbn            string
	price           string
	authors         []string // "First Last" keys into the author seed
	tags            []domain.BookTagName
}

var seedAuthors = []domain.Author{
	{FirstName: "Chinua", LastName: "Achebe", Bio: "Nigerian novelist, poet and critic."},
	{FirstName: "Ngugi", LastName: "wa Thiong'o", Bio: "Kenyan writer and academic."},
	{FirstName: "Chimamanda", LastName: "Adichie", Bio: "Nigerian writer of novels and short stories."},
	{FirstName: "Margaret", LastName: "Ogola", Bio: "Kenyan novelist and paediatrician."},
	{FirstName: "James", LastName: "Clear", Bio: "Writer on habits and decision making."},
	{FirstName: "Frank", LastName: "Herbert", Bio: "American science fiction author."},
}

var seedTags = []domain.BookTag{
	{Name: domain.TagFiction, Description: "Novels and literary fiction."},
	{Name: domain.TagFantasy, Description: "Fantasy worlds and magic."},
	{Name: domain.TagComedy, Description: "Humour and satire."},
	{Name: domain.TagAdventure, Description: "Journeys and quests."},
	{Name: domain.TagRomance, Description: "Love stories."},
	{Name: domain.TagSciFi, Description: "Science fiction."},
	{Name: domain.TagHistory, Description: "Historical accounts and settings."},
	{Name: domain.TagSelfImprovement, Description: "Personal growth and habits."},
}

var seedBooks = []catalogBook{
	{
		title:           "Things Fall Apart",
		description:     "The story of Okonkwo and the arrival of colonialism in an Igbo village.",
		publicationYear: 1958,
		isbn:            "978-0-385-47454-2",
		price:           "1200.00",
		authors:         []string{"Chinua Achebe"},
		tags:            []domain.BookTagName{domain.TagFiction, domain.TagHistory},
	},
	{
		title:           "A Grain of Wheat",
		description:     "Kenya on the eve of independence, told through interwoven village lives.",
		publicationYear: 1967,
		isbn:            "978-0-14-118699-2",
		price:           "1100.00",
		authors:         []string{"Ngugi wa Thiong'o"},
		tags:            []domain.BookTagName{domain.TagFiction, domain.TagHistory},
	},
	{
		title:           "Half of a Yellow Sun",
		description:     "Lives caught up in the Biafran war.",
		publicationYear: 2006,
		isbn:            "978-0-00-720028-3",
		price:           "1500.00",
		authors:         []string{"Chimamanda Adichie"},
		tags:            []domain.BookTagName{domain.TagFiction, domain.TagHistory, domain.TagRomance},
	},
	{
		title:           "The River and the Source",
		description:     "Four generations of Kenyan women, from Akoko onwards.",
		publicationYear: 1994,
		isbn:            "978-9966-88-205-4",
		price:           "950.00",
		authors:         []string{"Margaret Ogola"},
		tags:            []domain.BookTagName{domain.TagFiction},
	},
	{
		title:           "Atomic Habits",
		description:     "Small changes, remarkable results.",
		publicationYear: 2018,
		isbn:            "978-0-7352-1129-2",
		price:           "1800.00",
		authors:         []string{"James Clear"},
		tags:            []domain.BookTagName{domain.TagSelfImprovement},
	},
	{
		title:           "Dune",
		description:     "Politics, religion and ecology on the desert planet Arrakis.",
		publicationYear: 1965,
		isbn:            "978-0-441-17271-9",
		price:           "1600.00",
		authors:         []string{"Frank Herbert"},
		tags:            []domain.BookTagName{domain.TagSciFi, domain.TagAdventure, domain.TagFantasy},
	},
}

// SeedCatalog inserts the built-in authors, tags and books, then stocks every
// book. Meant for a fresh database; reruns will fail on the ISBN constraint.
func SeedCatalog(repo *repository.Repository, initialStock int32) {
	authorIDs := make(map[string]int64)
	for i := range seedAuthors {
		author := seedAuthors[i]
		if err := repo.CreateAuthor(&author); err != nil {
			slog.Error("failed to insert author", slog.String("name", author.FullName()), slog.String("error", err.Error()))
			continue
		}
		authorIDs[author.FullName()] = author.ID
	}

	tagIDs := make(map[domain.BookTagName]int64)
	for i := range seedTags {
		tag := seedTags[i]
		if err := repo.CreateBookTag(&tag); err != nil {
			slog.Error("failed to insert tag", slog.String("name", string(tag.Name)), slog.String("error", err.Error()))
			continue
		}
		tagIDs[tag.Name] = tag.ID
	}

	inserted := 0
	for _, cb := range seedBooks {
		pub := time.Date(cb.publicationYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		book := &domain.Book{
			Title:           cb.title,
			Description:     cb.description,
			PublicationDate: &pub,
			ISBN:            cb.isbn,
			Price:           cb.price,
		}
		for _, name := range cb.authors {
			if id, ok := authorIDs[name]; ok {
				book.AuthorIDs = append(book.AuthorIDs, id)
			}
		}
		for _, name := range cb.tags {
			if id, ok := tagIDs[name]; ok {
				book.TagIDs = append(book.TagIDs, id)
			}
		}

		if err := repo.CreateBook(book); err != nil {
			slog.Error("failed to insert book", slog.String("title", cb.title), slog.String("error", err.Error()))
			continue
		}

		if err := repo.SetBookStock(&domain.BookInventory{BookID: book.ID, StockQuantity: initialStock}); err != nil {
			slog.Error("failed to stock book", slog.String("title", cb.title), slog.String("error", err.Error()))
			continue
		}

		inserted++
	}

	slog.Info("catalog seeded", slog.Int("books", inserted))
}
