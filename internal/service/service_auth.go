// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/crypto"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/store"
	"github.com/MKhiriev/go-coin-favorites/internal/validators"
	"github.com/MKhiriev/go-coin-favorites/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and session token
// lifecycle using a UserRepository for persistence, a PasswordHasher for
// digests and a SessionIssuer for tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// favoriteRepository is used by WhoAmI to count the user's favorites.
	favoriteRepository store.FavoriteRepository

	hasher crypto.PasswordHasher
	issuer crypto.SessionIssuer

	// validator checks the shape of credentials before any hashing happens.
	validator validators.Validator

	idGenerator IDGenerator

	// now is the clock used for CreatedAt/UpdatedAt.
	now func() time.Time

	// dummySalt and dummyDigest are verified against when the email is
	// unknown, so that login costs one key derivation in every branch.
	dummySalt   []byte
	dummyDigest []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and credential primitives.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	favoriteRepository store.FavoriteRepository,
	hasher crypto.PasswordHasher,
	issuer crypto.SessionIssuer,
	idGenerator IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:     userRepository,
		favoriteRepository: favoriteRepository,
		hasher:             hasher,
		issuer:             issuer,
		validator:          validators.NewCredentialsValidator(cfg.PasswordMinLength),
		idGenerator:        idGenerator,
		now:                time.Now,
		dummySalt:          make([]byte, crypto.SaltLength),
		dummyDigest:        make([]byte, crypto.KeyLength),
		logger:             logger,
	}
}

// Register creates a new user account and opens a session for it.
//
// The email is normalized, a fresh salt is generated and the password digest
// is derived with the hasher's current work factor, which is stored with the
// record. The token is issued before the user is persisted, so a signing
// failure never leaves an account behind.
//
// Returns:
//   - ErrMissingCredentials, ErrInvalidEmail or ErrPasswordTooShort on bad input.
//   - ErrEmailTaken if the normalized email is already registered.
//   - A wrapped internal error for anything else.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.RegistrationFields...); err != nil {
		log.Debug().Err(err).Msg("registration data rejected")
		return models.Session{}, credentialsValidationError(err)
	}

	salt, err := a.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.Session{}, fmt.Errorf("salt generation failed: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		ID:                 a.idGenerator.Generate(),
		Email:              models.NormalizeEmail(credentials.Email),
		PasswordHash:       a.hasher.Hash(credentials.Password, salt),
		PasswordSalt:       salt,
		PasswordIterations: a.hasher.Iterations(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	token, err := a.issuer.Issue(user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Session{}, fmt.Errorf("token creation failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Str("email", user.Email).Msg("email is already registered")
			return models.Session{}, ErrEmailTaken
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	return models.Session{User: registeredUser, Token: token}, nil
}

// Login authenticates an existing user and opens a new session.
//
// An unknown email and a wrong password both produce ErrInvalidCredentials.
// On success the user's UpdatedAt is refreshed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.LoginFields...); err != nil {
		log.Debug().Err(err).Msg("login data rejected")
		return models.Session{}, ErrMissingCredentials
	}

	email := models.NormalizeEmail(credentials.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Verify(credentials.Password, a.dummySalt, a.dummyDigest, a.hasher.Iterations())
			log.Debug().Str("email", email).Msg("login with unknown email")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, foundUser.PasswordSalt, foundUser.PasswordHash, foundUser.PasswordIterations) {
		log.Debug().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	if err = a.userRepository.TouchLogin(ctx, foundUser.ID, now); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", foundUser.ID).Msg("user disappeared during login")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("user_id", foundUser.ID).Msg("refreshing last login failed")
		return models.Session{}, fmt.Errorf("refreshing last login failed: %w", err)
	}
	foundUser.UpdatedAt = now

	token, err := a.issuer.Issue(foundUser.ID)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.ID).Msg("token creation failed")
		return models.Session{}, fmt.Errorf("token creation failed: %w", err)
	}

	return models.Session{User: foundUser, Token: token}, nil
}

// Authenticate validates rawToken and returns the user ID it carries once the
// user is confirmed to still exist. Token failures are ErrTokenMissing,
// ErrTokenExpired or ErrTokenInvalid; a token whose user was deleted yields
// ErrUnknownSubject.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (string, error) {
	log := logger.FromContext(ctx)

	userID, err := a.issuer.Validate(rawToken)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")

		switch {
		case errors.Is(err, crypto.ErrTokenMissing):
			return "", ErrTokenMissing
		case errors.Is(err, crypto.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenInvalid
		}
	}

	if _, err = a.userRepository.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", userID).Msg("token subject does not exist")
			return "", ErrUnknownSubject
		}
		log.Err(err).Str("user_id", userID).Msg("resolving token subject failed")
		return "", fmt.Errorf("resolving token subject failed: %w", err)
	}

	return userID, nil
}

// WhoAmI returns the user identified by userID with FavoritesCount filled.
// A token whose user no longer exists yields ErrUnknownSubject.
func (a *authService) WhoAmI(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrUnknownSubject
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", userID).Msg("token subject does not exist")
			return models.User{}, ErrUnknownSubject
		}
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	count, err := a.favoriteRepository.CountFavorites(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("counting favorites failed")
		return models.User{}, fmt.Errorf("counting favorites failed: %w", err)
	}
	user.FavoritesCount = &count

	return user, nil
}

// credentialsValidationError converts a validator error into the matching
// service error, keeping the original in the chain.
func credentialsValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	case errors.Is(err, validators.ErrPasswordTooShort):
		return fmt.Errorf("%w: %w", ErrPasswordTooShort, err)
	case errors.Is(err, validators.ErrEmptyEmail), errors.Is(err, validators.ErrEmptyPassword):
		return fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
