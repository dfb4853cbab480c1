package query

import (
	"github.com/okoval/bookstore/internal/report/domain"
)

// LeaderboardQuery asks for the period leaders: best-selling book, most
// profitable employee, top author and genre
type LeaderboardQuery struct {
	From string
	To   string
}

// Leaderboard bundles the ranking reports for one period. Fields are nil
// when no sales fall in the period.
type Leaderboard struct {
	MostSoldBook *domain.BookTotal      `json:"most_sold_book"`
	BestSeller   *domain.EmployeeProfit `json:"best_seller"`
	TopAuthor    *domain.AuthorTotal    `json:"top_author"`
	TopGenre     *domain.GenreTotal     `json:"top_genre"`
}

// LeaderboardHandler handles the leaderboard query
type LeaderboardHandler struct {
	repo domain.ReportRepository
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(repo domain.ReportRepository) *LeaderboardHandler {
	return &LeaderboardHandler{repo: repo}
}

// Handle executes the leaderboard query
func (h *LeaderboardHandler) Handle(query LeaderboardQuery) (*Leaderboard, error) {
	period, err := ParsePeriod(query.From, query.To)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{}

	if board.MostSoldBook, err = h.repo.MostSoldBook(period); err != nil && err != domain.ErrNoData {
		return nil, err
	}
	if board.BestSeller, err = h.repo.BestSellerByProfit(period); err != nil && err != domain.ErrNoData {
		return nil, err
	}
	if board.TopAuthor, err = h.repo.TopAuthor(period); err != nil && err != domain.ErrNoData {
		return nil, err
	}
	if board.TopGenre, err = h.repo.TopGenre(period); err != nil && err != domain.ErrNoData {
		return nil, err
	}

	return board, nil
}
