package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

const (
	employeesCollection    = "employees"
	indirectCollection     = "monthly_indirect_costs"
	projectCostsCollection = "project_costs"
)

// MongoStore is the document DataSource. Monthly records are embedded in the
// employee document and ODC items in the month's project_costs document.
type MongoStore struct {
	client    *mongo.Client
	employees *mongo.Collection
	indirect  *mongo.Collection
	projects  *mongo.Collection
	now       func() time.Time
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:    client,
		employees: db.Collection(employeesCollection),
		indirect:  db.Collection(indirectCollection),
		projects:  db.Collection(projectCostsCollection),
		now:       time.Now,
	}
}

// EnsureIndexes creates the unique month and employee_id indexes.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.employees.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName("uq_employee_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employee_name", Value: 1}},
			Options: options.Index().SetName("idx_employee_name"),
		},
	})
	if err != nil {
		return fmt.Errorf("employees indexes: %w", err)
	}
	monthIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "month", Value: 1}},
		Options: options.Index().SetName("uq_month").SetUnique(true),
	}
	if _, err := s.indirect.Indexes().CreateOne(ctx, monthIdx); err != nil {
		return fmt.Errorf("indirect indexes: %w", err)
	}
	if _, err := s.projects.Indexes().CreateOne(ctx, monthIdx); err != nil {
		return fmt.Errorf("project cost indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Name() string { return "mongo" }

func (s *MongoStore) Ping(ctx context.Context) error { return s.client.Ping(ctx, nil) }

func (s *MongoStore) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

func employeeQuery(f models.EmployeeFilter) bson.M {
	q := bson.M{}
	if f.Department != "" && !strings.EqualFold(f.Department, "all") {
		q["department"] = f.Department
	}
	if f.LCAT != "" && !strings.EqualFold(f.LCAT, "all") {
		q["lcat"] = f.LCAT
	}
	return q
}

func (s *MongoStore) ListEmployees(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.employees.Find(ctx, employeeQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Employee{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].MonthlyData == nil {
			list[i].MonthlyData = []models.MonthlyRecord{}
		}
	}
	return list, nil
}

func (s *MongoStore) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var e models.Employee
	err := s.employees.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Employee{}, domain.NotFoundError{Resource: "employee", Err: err}
	}
	if err != nil {
		return models.Employee{}, err
	}
	if e.MonthlyData == nil {
		e.MonthlyData = []models.MonthlyRecord{}
	}
	return e, nil
}

func (s *MongoStore) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := s.now()
	e.CreatedAt, e.UpdatedAt = now, now
	if e.MonthlyData == nil {
		e.MonthlyData = []models.MonthlyRecord{}
	}
	if _, err := s.employees.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Employee{}, domain.ConflictError{Resource: "employee", Msg: "duplicate key", Err: err}
		}
		return models.Employee{}, err
	}
	return e, nil
}

// UpdateEmployee sets every field except the embedded monthly records, which
// only UpsertMonthlyRecord writes.
func (s *MongoStore) UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.UpdatedAt = s.now()
	raw, err := bson.Marshal(e)
	if err != nil {
		return models.Employee{}, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return models.Employee{}, err
	}
	for _, k := range []string{"_id", "monthly_data", "created_at"} {
		delete(set, k)
	}
	update := bson.M{"$set": set}
	if e.EndDate == nil {
		update["$unset"] = bson.M{"end_date": ""}
	}

	res, err := s.employees.UpdateOne(ctx, bson.M{"_id": e.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Employee{}, domain.ConflictError{Resource: "employee", Msg: "duplicate key", Err: err}
		}
		return models.Employee{}, err
	}
	if res.MatchedCount == 0 {
		return models.Employee{}, domain.NotFound("employee")
	}
	return s.GetEmployee(ctx, e.ID)
}

func (s *MongoStore) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("employee")
	}
	return nil
}

func (s *MongoStore) UpsertMonthlyRecord(ctx context.Context, employeeID string, rec models.MonthlyRecord) (models.Employee, error) {
	now := s.now()
	res, err := s.employees.UpdateOne(ctx,
		bson.M{"_id": employeeID, "monthly_data.month": rec.Month},
		bson.M{"$set": bson.M{"monthly_data.$": rec, "updated_at": now}},
	)
	if err != nil {
		return models.Employee{}, err
	}
	if res.MatchedCount == 0 {
		res, err = s.employees.UpdateOne(ctx,
			bson.M{"_id": employeeID},
			bson.M{"$push": bson.M{"monthly_data": rec}, "$set": bson.M{"updated_at": now}},
		)
		if err != nil {
			return models.Employee{}, err
		}
		if res.MatchedCount == 0 {
			return models.Employee{}, domain.NotFound("employee")
		}
	}
	return s.GetEmployee(ctx, employeeID)
}

func (s *MongoStore) Distinct(ctx context.Context, field string) ([]string, error) {
	if !distinctFields[field] {
		return nil, domain.Invalid("field", "unsupported distinct field "+field)
	}
	vals, err := s.employees.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
			out = append(out, str)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *MongoStore) GetIndirectCost(ctx context.Context, month string) (models.IndirectCost, error) {
	var ic models.IndirectCost
	err := s.indirect.FindOne(ctx, bson.M{"month": month}).Decode(&ic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.IndirectCost{}, domain.NotFoundError{Resource: "indirect cost", Err: err}
	}
	return ic, err
}

func (s *MongoStore) UpsertIndirectCost(ctx context.Context, ic models.IndirectCost) (models.IndirectCost, error) {
	now := s.now()
	_, err := s.indirect.UpdateOne(ctx,
		bson.M{"month": ic.Month},
		bson.M{
			"$set": bson.M{
				"fringe_amount":         ic.FringeAmount,
				"overhead_amount":       ic.OverheadAmount,
				"ga_amount":             ic.GAAmount,
				"profit_amount":         ic.ProfitAmount,
				"total_indirect_amount": ic.TotalAmount,
				"notes":                 ic.Notes,
				"updated_at":            now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.IndirectCost{}, err
	}
	return s.GetIndirectCost(ctx, ic.Month)
}

func (s *MongoStore) ListODCItems(ctx context.Context, month string) ([]models.ODCItem, error) {
	var doc struct {
		ODCItems []models.ODCItem `bson:"odc_items"`
	}
	opts := options.FindOne().SetProjection(bson.M{"odc_items": 1})
	err := s.projects.FindOne(ctx, bson.M{"month": month}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.ODCItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.ODCItems == nil {
		return []models.ODCItem{}, nil
	}
	return doc.ODCItems, nil
}

func (s *MongoStore) AddODCItem(ctx context.Context, it models.ODCItem) (models.ODCItem, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = s.now()
	}
	_, err := s.projects.UpdateOne(ctx,
		bson.M{"month": it.Month},
		bson.M{"$push": bson.M{"odc_items": it}, "$setOnInsert": bson.M{"month": it.Month}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.ODCItem{}, err
	}
	return it, nil
}

func (s *MongoStore) DeleteODCItem(ctx context.Context, month, id string) error {
	res, err := s.projects.UpdateOne(ctx,
		bson.M{"month": month, "odc_items.id": id},
		bson.M{"$pull": bson.M{"odc_items": bson.M{"id": id}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("odc item")
	}
	return nil
}

func (s *MongoStore) GetProjectCost(ctx context.Context, month string) (models.ProjectCostSummary, error) {
	var pc models.ProjectCostSummary
	// a document holding only pushed ODC items has no computed totals yet
	err := s.projects.FindOne(ctx, bson.M{"month": month, "updated_at": bson.M{"$exists": true}}).Decode(&pc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ProjectCostSummary{}, domain.NotFoundError{Resource: "project cost", Err: err}
	}
	if err != nil {
		return models.ProjectCostSummary{}, err
	}
	if pc.ODCItems == nil {
		pc.ODCItems = []models.ODCItem{}
	}
	return pc, nil
}

// SaveProjectCost writes the computed totals. The odc_items array is owned by
// AddODCItem and DeleteODCItem and is left untouched.
func (s *MongoStore) SaveProjectCost(ctx context.Context, pc models.ProjectCostSummary) error {
	if pc.UpdatedAt.IsZero() {
		pc.UpdatedAt = s.now()
	}
	_, err := s.projects.UpdateOne(ctx,
		bson.M{"month": pc.Month},
		bson.M{"$set": bson.M{
			"direct_labor_cost":   pc.DirectLaborCost,
			"direct_labor_hours":  pc.DirectLaborHours,
			"subcontractor_cost":  pc.SubcontractorCost,
			"total_odc_cost":      pc.TotalODCCost,
			"fringe_cost":         pc.FringeCost,
			"overhead_cost":       pc.OverheadCost,
			"ga_cost":             pc.GACost,
			"profit_cost":         pc.ProfitCost,
			"total_indirect_cost": pc.TotalIndirectCost,
			"total_cost":          pc.TotalCost,
			"updated_at":          pc.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
