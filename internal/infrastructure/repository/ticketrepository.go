package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/db"
	apperrors "github.com/orris-inc/setracker/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create inserts the ticket row, its technology and assignee links and its
// detail record. A taken number surfaces as a duplicate-key error.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.saveRelations(tx, model.ID, t)
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	// The ID is only adopted once every row is in, so a retried create starts clean.
	return t.SetID(model.ID)
}

// Update writes the ticket only if the stored version matches the loaded one,
// then replaces its links and detail record.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ? AND version = ?", model.ID, model.Version).
			Updates(map[string]interface{}{
				"title":               model.Title,
				"description":         model.Description,
				"status":              model.Status,
				"priority":            model.Priority,
				"owner_id":            model.OwnerID,
				"reporter_name":       model.ReporterName,
				"reporter_contact":    model.ReporterContact,
				"reporter_department": model.ReporterDepartment,
				"business_impact":     model.BusinessImpact,
				"version":             model.Version + 1,
				"updated_at":          model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.staleOrMissing(tx, model)
		}

		if err := r.clearRelations(tx, model.ID); err != nil {
			return err
		}
		return r.saveRelations(tx, model.ID, t)
	})
	if err != nil {
		if errors.Is(err, ticket.ErrVersionConflict) || apperrors.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	t.SetVersion(model.Version + 1)
	return nil
}

func (r *TicketRepository) staleOrMissing(tx *gorm.DB, model *models.TicketModel) error {
	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ticket %s not found", model.Number))
	}
	return fmt.Errorf("ticket %s at version %d: %w", model.Number, model.Version, ticket.ErrVersionConflict)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return r.getOne(ctx, "number = ?", number)
}

func (r *TicketRepository) getOne(ctx context.Context, query string, arg interface{}) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TicketModel
	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	tickets, err := r.assemble(tx, []models.TicketModel{model})
	if err != nil {
		return nil, err
	}
	return tickets[0], nil
}

// List returns tickets newest first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.assemble(tx, ticketModels)
}

func (r *TicketRepository) NumbersForYear(ctx context.Context, prefix string, year int) ([]string, error) {
	var numbers []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("number LIKE ?", ticket.NumberScope(prefix, year)+"-%").
		Pluck("number", &numbers).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket numbers: %w", err)
	}
	return numbers, nil
}

func (r *TicketRepository) saveRelations(tx *gorm.DB, ticketID uint, t *ticket.Ticket) error {
	if techIDs := t.TechnologyIDs(); len(techIDs) > 0 {
		rows := make([]models.TicketTechnologyModel, len(techIDs))
		for i, id := range techIDs {
			rows[i] = models.TicketTechnologyModel{TicketID: ticketID, TechnologyID: id}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if assigneeIDs := t.AssigneeIDs(); len(assigneeIDs) > 0 {
		rows := make([]models.TicketAssigneeModel, len(assigneeIDs))
		for i, id := range assigneeIDs {
			rows[i] = models.TicketAssigneeModel{TicketID: ticketID, UserID: id}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if detail := r.mapper.DetailToModel(ticketID, t.Detail()); detail != nil {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *TicketRepository) clearRelations(tx *gorm.DB, ticketID uint) error {
	for _, model := range []interface{}{
		&models.TicketTechnologyModel{},
		&models.TicketAssigneeModel{},
		&models.BugReportModel{},
		&models.FeatureRequestModel{},
		&models.TaskModel{},
	} {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// assemble loads links and details for a page of ticket rows in one query per table.
func (r *TicketRepository) assemble(tx *gorm.DB, ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	if len(ticketModels) == 0 {
		return []*ticket.Ticket{}, nil
	}

	ids := make([]uint, len(ticketModels))
	for i := range ticketModels {
		ids[i] = ticketModels[i].ID
	}

	links := make(map[uint]*mappers.TicketLinks, len(ids))
	for _, id := range ids {
		links[id] = &mappers.TicketLinks{}
	}

	var techRows []models.TicketTechnologyModel
	if err := tx.Where("ticket_id IN ?", ids).Order("technology_id ASC").Find(&techRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket technologies: %w", err)
	}
	for _, row := range techRows {
		links[row.TicketID].TechnologyIDs = append(links[row.TicketID].TechnologyIDs, row.TechnologyID)
	}

	var assigneeRows []models.TicketAssigneeModel
	if err := tx.Where("ticket_id IN ?", ids).Order("user_id ASC").Find(&assigneeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket assignees: %w", err)
	}
	for _, row := range assigneeRows {
		links[row.TicketID].AssigneeIDs = append(links[row.TicketID].AssigneeIDs, row.UserID)
	}

	if err := r.loadDetails(tx, ticketModels, links); err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i], *links[ticketModels[i].ID])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}

func (r *TicketRepository) loadDetails(tx *gorm.DB, ticketModels []models.TicketModel, links map[uint]*mappers.TicketLinks) error {
	byType := make(map[vo.TicketType][]uint)
	for i := range ticketModels {
		tt := vo.TicketType(ticketModels[i].TicketType)
		byType[tt] = append(byType[tt], ticketModels[i].ID)
	}

	if ids := byType[vo.TypeBug]; len(ids) > 0 {
		var rows []models.BugReportModel
		if err := tx.Where("ticket_id IN ?", ids).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load bug reports: %w", err)
		}
		for i := range rows {
			links[rows[i].TicketID].Detail = r.mapper.BugToDomain(&rows[i])
		}
	}

	if ids := byType[vo.TypeFeature]; len(ids) > 0 {
		var rows []models.FeatureRequestModel
		if err := tx.Where("ticket_id IN ?", ids).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load feature requests: %w", err)
		}
		for i := range rows {
			links[rows[i].TicketID].Detail = r.mapper.FeatureToDomain(&rows[i])
		}
	}

	if ids := byType[vo.TypeTask]; len(ids) > 0 {
		var rows []models.TaskModel
		if err := tx.Where("ticket_id IN ?", ids).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		for i := range rows {
			links[rows[i].TicketID].Detail = r.mapper.TaskToDomain(&rows[i])
		}
	}
	return nil
}
