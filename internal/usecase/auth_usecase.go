package usecase

import (
	"context"
	"errors"
	"fmt"

	"benihealth/internal/converter"
	"benihealth/internal/delivery/dto"
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"
	"benihealth/internal/service"
	"benihealth/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("user profile not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
	employerRepo    repository.EmployerProfileRepository
	employeeRepo    repository.EmployeeProfileRepository
	providerRepo    repository.ProviderProfileRepository
	hmoRepo         repository.HMOProfileRepository
	provisioner     service.ProvisioningService
	auditService    service.AuditService
	jwtService      *jwt.JWTService
	redisClient     *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	employeeRepo repository.EmployeeProfileRepository,
	providerRepo repository.ProviderProfileRepository,
	hmoRepo repository.HMOProfileRepository,
	provisioner service.ProvisioningService,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		userProfileRepo: userProfileRepo,
		employerRepo:    employerRepo,
		employeeRepo:    employeeRepo,
		providerRepo:    providerRepo,
		hmoRepo:         hmoRepo,
		provisioner:     provisioner,
		auditService:    auditService,
		jwtService:      jwtService,
		redisClient:     redisClient,
	}
}

// Register creates the User, its UserProfile and the role-specific profile in
// a single transaction. Provisioning failures roll everything back: a
// half-provisioned account must never persist.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.UserProfile{
		UserID: user.ID,
		Role:   req.Role,
	}
	if req.Phone != "" {
		phone := req.Phone
		profile.Phone = &phone
	}

	if err := u.userProfileRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to create user profile: %+v", err)
		return nil, err
	}

	// Create the role-specific profile (and, for employees, claim a matching
	// enrollee record) inside the same transaction.
	if err := u.provisioner.ProvisionRoleProfile(tx, user, profile); err != nil {
		u.log.Warnf("Failed to provision role profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"email": user.Email,
		"role":  profile.Role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user, profile.Role)
	if err != nil {
		return nil, err
	}

	userResponse, err := u.loadUserResponse(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		User:   userResponse,
		Tokens: tokens,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := u.userProfileRepo.FindByUserID(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	role := ""
	if profile != nil {
		role = profile.Role
	}

	tokens, err := u.issueTokens(ctx, user, role)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, db, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	// Delete tokens from Redis (pattern matching to find and delete)
	for _, pattern := range []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete token: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: delete old refresh token before issuing the new pair
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	user := &entity.User{ID: claims.UserID, Email: claims.Email}
	return u.issueTokens(ctx, user, claims.Role)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return u.loadUserResponse(ctx, userID)
}

// issueTokens generates an access/refresh pair and records both token IDs in
// Redis so they can be revoked.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// loadUserResponse assembles the full profile view, including the
// role-specific profile for the user's role.
func (u *authUsecase) loadUserResponse(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.userProfileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	switch profile.Role {
	case entity.RoleEmployer:
		employer, err := u.employerRepo.FindByUserProfileID(db, profile.ID)
		if err != nil {
			return nil, err
		}
		profile.EmployerProfile = employer
	case entity.RoleEmployee:
		employee, err := u.employeeRepo.FindByUserProfileID(db, profile.ID)
		if err != nil {
			return nil, err
		}
		profile.EmployeeProfile = employee
	case entity.RoleProvider:
		provider, err := u.providerRepo.FindByUserProfileID(db, profile.ID)
		if err != nil {
			return nil, err
		}
		profile.ProviderProfile = provider
	case entity.RoleHMO:
		hmo, err := u.hmoRepo.FindByUserProfileID(db, profile.ID)
		if err != nil {
			return nil, err
		}
		profile.HMOProfile = hmo
	}

	return converter.UserToResponse(user, profile), nil
}
