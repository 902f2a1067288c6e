package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/report"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/constants"
	"github.com/orris-inc/setracker/internal/shared/db"
)

// ReportRepository reads flattened ticket facts for the reporting engine.
// Rows that disappear between queries (a ticket or technology deleted
// mid-read) simply drop out of the snapshot.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type ticketFactRow struct {
	ID        uint
	Number    string
	Title     string
	Status    string
	ProjectID uint
	OwnerID   *uint
	UpdatedAt time.Time
}

func (r *ReportRepository) TicketsWorkedOnBy(ctx context.Context, userID uint) ([]report.TicketFact, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	assigned := tx.Model(&models.TicketAssigneeModel{}).Select("ticket_id").Where("user_id = ?", userID)
	return r.ticketFacts(tx, func(q *gorm.DB) *gorm.DB {
		return q.Where("owner_id = ? OR id IN (?)", userID, assigned)
	})
}

func (r *ReportRepository) TicketsForProject(ctx context.Context, projectID uint) ([]report.TicketFact, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.ticketFacts(tx, func(q *gorm.DB) *gorm.DB {
		return q.Where("project_id = ?", projectID)
	})
}

// AllTickets returns every ticket tagged with at least one technology.
func (r *ReportRepository) AllTickets(ctx context.Context) ([]report.TicketFact, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	tagged := tx.Model(&models.TicketTechnologyModel{}).Distinct("ticket_id")
	return r.ticketFacts(tx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id IN (?)", tagged)
	})
}

type technologyFactRow struct {
	ID           uint
	Name         string
	CategoryID   uint
	CategoryName string
}

func (r *ReportRepository) Technologies(ctx context.Context) ([]report.TechnologyFact, error) {
	var rows []technologyFactRow
	if err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableTechnologies + " t").
		Select("t.id, t.name, t.category_id, c.name AS category_name").
		Joins(fmt.Sprintf("JOIN %s c ON c.id = t.category_id", constants.TableTechCategories)).
		Order("t.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load technology facts: %w", err)
	}

	facts := make([]report.TechnologyFact, len(rows))
	for i, row := range rows {
		facts[i] = report.TechnologyFact(row)
	}
	return facts, nil
}

func (r *ReportRepository) Categories(ctx context.Context) ([]report.CategoryFact, error) {
	var rows []models.TechnologyCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Select("id", "name").
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load category facts: %w", err)
	}

	facts := make([]report.CategoryFact, len(rows))
	for i, row := range rows {
		facts[i] = report.CategoryFact{ID: row.ID, Name: row.Name}
	}
	return facts, nil
}

func (r *ReportRepository) TeamSize(ctx context.Context) (int, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("is_team_member = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return int(count), nil
}

func (r *ReportRepository) ticketFacts(tx *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]report.TicketFact, error) {
	var rows []ticketFactRow
	if err := scope(tx.Model(&models.TicketModel{})).
		Select("id", "number", "title", "status", "project_id", "owner_id", "updated_at").
		Order("id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket facts: %w", err)
	}
	if len(rows) == 0 {
		return []report.TicketFact{}, nil
	}

	ticketIDs := make([]uint, len(rows))
	projectIDs := make(map[uint]struct{})
	userIDs := make(map[uint]struct{})
	for i, row := range rows {
		ticketIDs[i] = row.ID
		projectIDs[row.ProjectID] = struct{}{}
		if row.OwnerID != nil {
			userIDs[*row.OwnerID] = struct{}{}
		}
	}

	var techLinks []models.TicketTechnologyModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Order("technology_id ASC").Find(&techLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket technologies: %w", err)
	}
	var assigneeLinks []models.TicketAssigneeModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Order("user_id ASC").Find(&assigneeLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket assignees: %w", err)
	}
	for _, link := range assigneeLinks {
		userIDs[link.UserID] = struct{}{}
	}

	projectNames, err := r.projectNames(tx, keys(projectIDs))
	if err != nil {
		return nil, err
	}
	people, err := r.people(tx, keys(userIDs))
	if err != nil {
		return nil, err
	}

	techsByTicket := make(map[uint][]uint, len(rows))
	for _, link := range techLinks {
		techsByTicket[link.TicketID] = append(techsByTicket[link.TicketID], link.TechnologyID)
	}
	assigneesByTicket := make(map[uint][]report.Person, len(rows))
	for _, link := range assigneeLinks {
		if p, ok := people[link.UserID]; ok {
			assigneesByTicket[link.TicketID] = append(assigneesByTicket[link.TicketID], p)
		}
	}

	facts := make([]report.TicketFact, 0, len(rows))
	for _, row := range rows {
		projectName, ok := projectNames[row.ProjectID]
		if !ok {
			continue
		}
		fact := report.TicketFact{
			ID:            row.ID,
			Number:        row.Number,
			Title:         row.Title,
			Status:        vo.TicketStatus(row.Status),
			ProjectID:     row.ProjectID,
			ProjectName:   projectName,
			Assignees:     assigneesByTicket[row.ID],
			TechnologyIDs: techsByTicket[row.ID],
			ModifiedAt:    row.UpdatedAt,
		}
		if row.OwnerID != nil {
			if p, ok := people[*row.OwnerID]; ok {
				owner := p
				fact.Owner = &owner
			}
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

func (r *ReportRepository) projectNames(tx *gorm.DB, ids []uint) (map[uint]string, error) {
	var rows []models.ProjectModel
	if err := tx.Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load project names: %w", err)
	}
	names := make(map[uint]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func (r *ReportRepository) people(tx *gorm.DB, ids []uint) (map[uint]report.Person, error) {
	people := make(map[uint]report.Person, len(ids))
	if len(ids) == 0 {
		return people, nil
	}

	var rows []models.UserModel
	if err := tx.Select("id", "username", "is_team_member").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, row := range rows {
		people[row.ID] = report.Person{ID: row.ID, Username: row.Username, TeamMember: row.IsTeamMember}
	}
	return people, nil
}

func keys(set map[uint]struct{}) []uint {
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
