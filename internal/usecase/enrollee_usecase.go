package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"benihealth/internal/converter"
	"benihealth/internal/delivery/dto"
	"benihealth/internal/delivery/http/middleware"
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"
	"benihealth/internal/service"
	"benihealth/pkg/importer"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEnrolleeNotFound        = errors.New("enrollee not found")
	ErrEnrolleeNotOwned        = errors.New("enrollee does not belong to this employer")
	ErrEnrolleePhoneExists     = errors.New("an enrollee with this phone number already exists")
	ErrEnrolleeIDExists        = errors.New("an enrollee with this enrollee ID already exists")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrEmployerProfileNotFound = errors.New("employer profile not found")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingColumns          = errors.New("file must contain all required columns")
)

// maxBulkErrors caps the error sample returned from a bulk import so a bad
// file cannot blow up the response.
const maxBulkErrors = 10

// bulkRequiredColumns are the headers a bulk enrollment file must carry.
var bulkRequiredColumns = []string{
	"first_name", "last_name", "dob", "gender", "phone", "email",
	"national_id", "address", "plan_code", "status", "coverage_start", "coverage_end",
}

type EnrolleeUsecase interface {
	List(ctx context.Context) ([]dto.EnrolleeResponse, error)
	Create(ctx context.Context, req *dto.CreateEnrolleeRequest) (*dto.EnrolleeResponse, error)
	Get(ctx context.Context, enrolleeID string) (*dto.EnrolleeResponse, error)
	Update(ctx context.Context, enrolleeID string, req *dto.UpdateEnrolleeRequest) (*dto.EnrolleeResponse, error)
	Terminate(ctx context.Context, enrolleeID string) error
	BulkImport(ctx context.Context, fileName string, file io.Reader) (*dto.BulkImportResult, error)
}

type enrolleeUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userProfileRepo repository.UserProfileRepository
	employerRepo    repository.EmployerProfileRepository
	enrolleeRepo    repository.EnrolleeRepository
	sequenceRepo    repository.EnrolleeSequenceRepository
	planRepo        repository.PlanRepository
	linker          service.LinkingService
	auditService    service.AuditService
}

func NewEnrolleeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userProfileRepo repository.UserProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	enrolleeRepo repository.EnrolleeRepository,
	sequenceRepo repository.EnrolleeSequenceRepository,
	planRepo repository.PlanRepository,
	linker service.LinkingService,
	auditService service.AuditService,
) EnrolleeUsecase {
	return &enrolleeUsecase{
		db:              db,
		log:             log,
		userProfileRepo: userProfileRepo,
		employerRepo:    employerRepo,
		enrolleeRepo:    enrolleeRepo,
		sequenceRepo:    sequenceRepo,
		planRepo:        planRepo,
		linker:          linker,
		auditService:    auditService,
	}
}

func (u *enrolleeUsecase) List(ctx context.Context) ([]dto.EnrolleeResponse, error) {
	db := u.db.WithContext(ctx)

	employer, err := u.employerFromContext(ctx, db)
	if err != nil {
		return nil, err
	}

	enrollees, err := u.enrolleeRepo.FindAllByEmployer(db, employer.ID)
	if err != nil {
		u.log.Warnf("Failed to list enrollees: %+v", err)
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.EnrolleeResponse, 0, len(enrollees))
	for i := range enrollees {
		responses = append(responses, *converter.EnrolleeToResponse(&enrollees[i], now))
	}

	return responses, nil
}

func (u *enrolleeUsecase) Create(ctx context.Context, req *dto.CreateEnrolleeRequest) (*dto.EnrolleeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employer, err := u.employerFromContext(ctx, tx)
	if err != nil {
		return nil, err
	}

	enrollee, err := u.createOne(ctx, tx, employer, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reverse linking runs after the enrollee is durable and must never fail
	// the request.
	u.linkAfterCreate(ctx, enrollee)

	return converter.EnrolleeToResponse(enrollee, time.Now()), nil
}

func (u *enrolleeUsecase) Get(ctx context.Context, enrolleeID string) (*dto.EnrolleeResponse, error) {
	db := u.db.WithContext(ctx)

	enrollee, err := u.ownedEnrollee(ctx, db, enrolleeID)
	if err != nil {
		return nil, err
	}

	return converter.EnrolleeToResponse(enrollee, time.Now()), nil
}

func (u *enrolleeUsecase) Update(ctx context.Context, enrolleeID string, req *dto.UpdateEnrolleeRequest) (*dto.EnrolleeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollee, err := u.ownedEnrollee(ctx, tx, enrolleeID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.EnrolleeToResponse(enrollee, time.Now())

	if req.FirstName != "" {
		enrollee.FirstName = req.FirstName
	}
	if req.LastName != "" {
		enrollee.LastName = req.LastName
	}
	if req.Phone != "" {
		enrollee.Phone = req.Phone
	}
	if req.Email != "" {
		enrollee.Email = req.Email
	}
	if req.NationalID != "" {
		enrollee.NationalID = req.NationalID
	}
	if req.Address != nil {
		enrollee.Address = entity.JSON(req.Address)
	}
	if req.Status != "" {
		enrollee.Status = entity.EnrolleeStatus(req.Status)
	}
	if req.CoverageStart != "" {
		start, err := parseDate(req.CoverageStart)
		if err != nil {
			return nil, err
		}
		enrollee.CoverageStart = start
	}
	if req.CoverageEnd != "" {
		end, err := parseDate(req.CoverageEnd)
		if err != nil {
			return nil, err
		}
		enrollee.CoverageEnd = end
	}

	if err := u.enrolleeRepo.Update(tx, enrollee); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrEnrolleePhoneExists
		}
		u.log.Warnf("Failed to update enrollee: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	newValue := converter.EnrolleeToResponse(enrollee, time.Now())
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionEnrolleeUpdate, "enrollee", enrollee.EnrolleeID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// Terminate soft-deletes: enrollees are never removed, their coverage status
// is set to TERMINATED.
func (u *enrolleeUsecase) Terminate(ctx context.Context, enrolleeID string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollee, err := u.ownedEnrollee(ctx, tx, enrolleeID)
	if err != nil {
		return err
	}

	enrollee.Status = entity.EnrolleeStatusTerminated

	if err := u.enrolleeRepo.Update(tx, enrollee); err != nil {
		u.log.Warnf("Failed to terminate enrollee: %+v", err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionEnrolleeTerminate, "enrollee", enrollee.EnrolleeID, nil, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *enrolleeUsecase) BulkImport(ctx context.Context, fileName string, file io.Reader) (*dto.BulkImportResult, error) {
	headers, rows, err := importer.Read(fileName, file)
	if err != nil {
		return nil, err
	}
	if !importer.HasColumns(headers, bulkRequiredColumns) {
		return nil, ErrMissingColumns
	}

	db := u.db.WithContext(ctx)
	employer, err := u.employerFromContext(ctx, db)
	if err != nil {
		return nil, err
	}

	// Each row gets its own transaction: one bad row must not take down the
	// rest of the file.
	result := importRows(rows, func(row map[string]string) error {
		req := rowToCreateRequest(row)

		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		enrollee, err := u.createOne(ctx, tx, employer, req)
		if err != nil {
			return err
		}
		if err := tx.Commit().Error; err != nil {
			return err
		}

		u.linkAfterCreate(ctx, enrollee)
		return nil
	})

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, db, &userID, entity.AuditActionEnrolleeBulkImport, "enrollee", fileName, result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return result, nil
}

// createOne inserts a single enrollee inside the caller's transaction,
// generating the enrollee ID from the per-day sequence when none was given.
func (u *enrolleeUsecase) createOne(ctx context.Context, tx *gorm.DB, employer *entity.EmployerProfile, req *dto.CreateEnrolleeRequest) (*entity.Enrollee, error) {
	plan, err := u.planRepo.FindByCode(tx, req.PlanCode)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, err
	}
	coverageStart, err := parseDate(req.CoverageStart)
	if err != nil {
		return nil, err
	}
	coverageEnd, err := parseDate(req.CoverageEnd)
	if err != nil {
		return nil, err
	}

	enrolleeID := req.EnrolleeID
	if enrolleeID == "" {
		now := time.Now()
		seq, err := u.sequenceRepo.Next(tx, now)
		if err != nil {
			u.log.Warnf("Failed to get enrollee sequence: %+v", err)
			return nil, err
		}
		enrolleeID = entity.FormatEnrolleeID(now, seq)
	}

	status := entity.EnrolleeStatus(req.Status)
	if status == "" {
		status = entity.EnrolleeStatusActive
	}

	enrollee := &entity.Enrollee{
		EnrolleeID:    enrolleeID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DOB:           dob,
		Gender:        req.Gender,
		Phone:         req.Phone,
		Email:         req.Email,
		NationalID:    req.NationalID,
		Address:       entity.JSON(req.Address),
		EmployerID:    &employer.ID,
		PlanID:        plan.ID,
		Status:        status,
		CoverageStart: coverageStart,
		CoverageEnd:   coverageEnd,
	}

	if err := u.enrolleeRepo.Create(tx, enrollee); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrEnrolleePhoneExists
		}
		if isDuplicateKeyError(err, "enrollee_id") {
			return nil, ErrEnrolleeIDExists
		}
		if isForeignKeyError(err, "plan") {
			return nil, ErrPlanNotFound
		}
		u.log.Warnf("Failed to create enrollee: %+v", err)
		return nil, err
	}
	enrollee.Plan = *plan

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionEnrolleeCreate, "enrollee", enrollee.EnrolleeID, map[string]interface{}{
		"enrollee_id": enrollee.EnrolleeID,
		"plan_code":   plan.PlanCode,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return enrollee, nil
}

// linkAfterCreate runs the reverse-linking step in its own transaction.
// Failures are logged and swallowed: the enrollee record already committed.
func (u *enrolleeUsecase) linkAfterCreate(ctx context.Context, enrollee *entity.Enrollee) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.linker.LinkEnrolleeToAccount(tx, enrollee); err != nil {
		u.log.Warnf("Failed to link enrollee %s to account: %+v", enrollee.EnrolleeID, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit enrollee link for %s: %+v", enrollee.EnrolleeID, err)
	}
}

// ownedEnrollee loads an enrollee and checks it belongs to the calling
// employer.
func (u *enrolleeUsecase) ownedEnrollee(ctx context.Context, db *gorm.DB, enrolleeID string) (*entity.Enrollee, error) {
	employer, err := u.employerFromContext(ctx, db)
	if err != nil {
		return nil, err
	}

	enrollee, err := u.enrolleeRepo.FindByEnrolleeID(db, enrolleeID)
	if err != nil {
		u.log.Warnf("Failed to find enrollee: %+v", err)
		return nil, err
	}
	if enrollee == nil {
		return nil, ErrEnrolleeNotFound
	}
	if enrollee.EmployerID == nil || *enrollee.EmployerID != employer.ID {
		return nil, ErrEnrolleeNotOwned
	}

	return enrollee, nil
}

func (u *enrolleeUsecase) employerFromContext(ctx context.Context, db *gorm.DB) (*entity.EmployerProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	profile, err := u.userProfileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	employer, err := u.employerRepo.FindByUserProfileID(db, profile.ID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerProfileNotFound
	}

	return employer, nil
}

// importRows walks the parsed rows, counting successes and failures. Row
// numbers in errors are 1-based data rows, the header line excluded.
func importRows(rows []map[string]string, create func(row map[string]string) error) *dto.BulkImportResult {
	result := &dto.BulkImportResult{TotalRows: len(rows)}

	for i, row := range rows {
		if err := create(row); err != nil {
			result.Failed++
			if len(result.Errors) < maxBulkErrors {
				result.Errors = append(result.Errors, dto.BulkRowError{
					Row:   i + 1,
					Error: err.Error(),
				})
			}
			continue
		}
		result.Created++
	}

	return result
}

// rowToCreateRequest maps a bulk file row onto the single-enrollee create
// request so both paths share one code path.
func rowToCreateRequest(row map[string]string) *dto.CreateEnrolleeRequest {
	return &dto.CreateEnrolleeRequest{
		EnrolleeID:    row["enrollee_id"],
		FirstName:     row["first_name"],
		LastName:      row["last_name"],
		DOB:           row["dob"],
		Gender:        row["gender"],
		Phone:         row["phone"],
		Email:         row["email"],
		NationalID:    row["national_id"],
		Address:       parseAddress(row["address"]),
		PlanCode:      row["plan_code"],
		Status:        row["status"],
		CoverageStart: row["coverage_start"],
		CoverageEnd:   row["coverage_end"],
	}
}

// parseAddress accepts either a JSON object or a plain string address cell.
func parseAddress(value string) map[string]interface{} {
	if value == "" {
		return nil
	}
	var address map[string]interface{}
	if err := json.Unmarshal([]byte(value), &address); err == nil {
		return address
	}
	return map[string]interface{}{"street": value}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return date, nil
}
