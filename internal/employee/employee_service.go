package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-empdir/internal/domain"
	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/events"
	"go-empdir/internal/messaging/kafka"
	"go-empdir/internal/security"
	"go-empdir/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeProfileKeyPrefix = "employees:profile:"

func GetEmployeeProfileKey(id string) string {
	return EmployeeProfileKeyPrefix + id
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.CurrentUser, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (EmployeeResponse, error)
	GetPaged(ctx context.Context, page, pageSize int) (PagedEmployeesResponse, error)
	Update(ctx context.Context, actor domain.CurrentUser, id uuid.UUID, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actor domain.CurrentUser, id uuid.UUID) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	hasher security.PasswordHasher
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, hasher security.PasswordHasher, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, hasher, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	hasher security.PasswordHasher,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		hasher: hasher,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	actor domain.CurrentUser,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role.String()),
	)

	if !req.Role.IsValid() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		s.logger.Warn("create employee invalid birth date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	// The caller may only create roles strictly below their own.
	if !actor.Role.Outranks(req.Role) {
		s.logger.Warn("create employee role above caller",
			zap.String("request_id", rid),
			zap.String("caller_role", actor.Role.String()),
			zap.String("requested_role", req.Role.String()),
		)
		return EmployeeResponse{}, employeeerrors.ErrCreateRoleTooHigh
	}

	existingEmail, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if existingEmail != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	existingDoc, err := s.repo.FindByDocNumber(ctx, req.DocNumber)
	if err != nil {
		s.logger.Error("create employee document lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if existingDoc != nil {
		return EmployeeResponse{}, employeeerrors.ErrDocNumberAlreadyExists
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		DocNumber: req.DocNumber,
		Password:  hashed,
		BirthDate: birthDate,
		Role:      req.Role,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if actor.IsAuthenticated {
		managerID := actor.UserID
		empl.ManagerID = &managerID
	}
	for _, phone := range req.Phones {
		empl.Phones = append(empl.Phones, EmployeePhone{
			ID:          uuid.New(),
			EmployeeID:  empl.ID,
			PhoneNumber: phone.PhoneNumber,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeLifecycleEvent{
			EventType:  events.TypeEmployeeCreated,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			Role:       empl.Role.String(),
			ManagerID:  uuidToString(empl.ManagerID),
			OccurredAt: time.Now().UTC(),
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (EmployeeResponse, error) {
	if id == uuid.Nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	cacheKey := GetEmployeeProfileKey(id.String())

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps concurrent misses for the same profile from
	// stampeding the store.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empl, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToResponse(*empl)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return EmployeeResponse{}, err
	}

	return v.(EmployeeResponse), nil
}

func (s *service) GetPaged(ctx context.Context, page, pageSize int) (PagedEmployeesResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	s.logger.Debug("get paged employees requested",
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
	)

	empls, total, err := s.repo.FindPaged(ctx, page, pageSize)
	if err != nil {
		s.logger.Error("get paged employees failed", zap.Error(err))
		return PagedEmployeesResponse{}, mapRepositoryError(err)
	}

	return PagedEmployeesResponse{
		Items:       mapToListResponse(empls),
		TotalCount:  total,
		PageSize:    pageSize,
		CurrentPage: page,
	}, nil
}

func (s *service) Update(
	ctx context.Context,
	actor domain.CurrentUser,
	id uuid.UUID,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id.String()),
	)

	if id == uuid.Nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	if req.Role != nil {
		if !req.Role.IsValid() {
			return EmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
		// Nobody may grant a role above their own.
		if req.Role.Outranks(actor.Role) {
			s.logger.Warn("update employee role above caller",
				zap.String("request_id", rid),
				zap.String("caller_role", actor.Role.String()),
				zap.String("requested_role", req.Role.String()),
			)
			return EmployeeResponse{}, employeeerrors.ErrUpdateRoleTooHigh
		}
	}

	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			s.logger.Warn("update employee invalid birth date",
				zap.String("birth_date", *req.BirthDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
		birthDate = &parsed
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FirstName != nil {
		empl.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		empl.LastName = *req.LastName
	}
	if birthDate != nil {
		empl.BirthDate = *birthDate
	}
	if req.Active != nil {
		empl.Active = *req.Active
	}
	if req.Role != nil {
		empl.Role = *req.Role
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.logger.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.Password = hashed
	}

	// An absent phone list leaves the stored phones alone; a present
	// list (even empty) is the full desired collection.
	if req.Phones != nil {
		empl.Phones = reconcilePhones(empl.Phones, req.Phones, empl.ID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateProfileCache(ctx, empl.ID.String())

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	actor domain.CurrentUser,
	id uuid.UUID,
) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id.String()),
	)

	if id == uuid.Nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already gone; removal is idempotent.
			s.logger.Info("delete employee target absent",
				zap.String("request_id", rid),
				zap.String("employee_id", id.String()),
			)
			return nil
		}
		s.logger.Error("delete employee fetch target failed", zap.Error(err))
		return err
	}

	if target.Role.Outranks(actor.Role) {
		s.logger.Warn("delete employee target outranks caller",
			zap.String("request_id", rid),
			zap.String("caller_role", actor.Role.String()),
			zap.String("target_role", target.Role.String()),
		)
		return employeeerrors.ErrDeleteRoleTooHigh
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeLifecycleEvent{
			EventType:  events.TypeEmployeeDeleted,
			RequestID:  rid,
			EmployeeID: id.String(),
			OccurredAt: time.Now().UTC(),
		}); err != nil {
			s.logger.Error("delete employee outbox persist failed", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateProfileCache(ctx, id.String())

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id.String()),
	)
	return nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, event events.EmployeeLifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:          uuid.NewString(),
		RequestID:   event.RequestID,
		AggregateID: event.EmployeeID,
		EventType:   event.EventType,
		Topic:       events.EmployeeLifecycleTopic,
		Payload:     payload,
		Status:      kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateProfileCache(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeProfileKey(id)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee profile cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

// reconcilePhones merges the request's phone entries into the existing
// collection: entries whose id matches an existing phone renumber it in
// place, entries without an id become new phones, existing phones absent
// from the request are dropped, and entries referencing unknown ids are
// ignored.
func reconcilePhones(existing []EmployeePhone, requested []EmployeePhoneRequest, employeeID uuid.UUID) []EmployeePhone {
	merged := make([]EmployeePhone, 0, len(requested))

	for _, oldPhone := range existing {
		for _, reqPhone := range requested {
			if reqPhone.ID != nil && *reqPhone.ID == oldPhone.ID {
				oldPhone.PhoneNumber = reqPhone.PhoneNumber
				merged = append(merged, oldPhone)
				break
			}
		}
	}

	for _, reqPhone := range requested {
		if reqPhone.ID == nil {
			merged = append(merged, EmployeePhone{
				ID:          uuid.New(),
				EmployeeID:  employeeID,
				PhoneNumber: reqPhone.PhoneNumber,
			})
		}
	}

	return merged
}

func parseBirthDate(value string) (time.Time, error) {
	parsed, err := time.Parse(BirthDateLayout, value)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidBirthDate
	}
	if !isAdult(parsed, time.Now()) {
		return time.Time{}, employeeerrors.ErrEmployeeIsMinor
	}
	return parsed, nil
}

func isAdult(birthDate, now time.Time) bool {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age >= 18
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        empl.ID.String(),
		Active:    empl.Active,
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email,
		DocNumber: empl.DocNumber,
		BirthDate: empl.BirthDate.Format(BirthDateLayout),
		Role:      empl.Role.String(),
		ManagerID: uuidToString(empl.ManagerID),
	}
	for _, phone := range empl.Phones {
		resp.Phones = append(resp.Phones, EmployeePhoneResponse{
			ID:          phone.ID.String(),
			PhoneNumber: phone.PhoneNumber,
		})
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
