package auth

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"goban/internal/adapters"
	"goban/internal/httpresponse"
	"goban/internal/random"
	repo "goban/internal/repository"
)

// AuthHandler ведёт анонимные cookie-сессии: игрок получает случайный
// идентификатор при первом обращении, сессия живёт в Redis.
type AuthHandler struct {
	sessions *repo.RedisSessionStorage
	log      *zap.SugaredLogger
}

func NewAuthHandler(redis *adapters.AdapterRedis, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		sessions: repo.NewSessionRedisStorage(redis.GetClient()),
		log:      log,
	}
}

// Hello выдаёт новую анонимную сессию, если её ещё нет.
func (a *AuthHandler) Hello(w http.ResponseWriter, r *http.Request) {
	userID := a.EnsureSession(w, r)
	if userID == "" {
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, map[string]string{"user_id": userID})
}

// Logout удаляет сессию по cookie sessionID.
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("sessionID")
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			a.log.Warn("Logout: no cookie provided")
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: http.ErrNoCookie.Error()})
			return
		}
		a.log.Error("Logout: error retrieving cookie: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	a.sessions.DeleteSession(sessionCookie.Value)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// GetUserID возвращает идентификатор пользователя из сессии.
// Если сессия просрочена или не найдена, пишет ошибку в http-ответ и возвращает "".
func (a *AuthHandler) GetUserID(w http.ResponseWriter, r *http.Request) string {
	sessionCookie, err := r.Cookie("sessionID")
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			a.log.Warn("GetUserID: no sessionID cookie")
			httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
				httpresponse.ErrorResponse{ErrorDescription: "Не найдена cookie sessionID"})
			return ""
		}
		a.log.Error("GetUserID: error retrieving cookie: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return ""
	}

	userID, ok := a.sessions.GetUserIdBySession(sessionCookie.Value)
	if !ok {
		a.log.Warn("GetUserID: session not found or expired")
		httpresponse.WriteResponseWithStatus(w, http.StatusUnauthorized,
			httpresponse.ErrorResponse{ErrorDescription: "Сессия не найдена или истекла"})
		return ""
	}

	return userID
}

// EnsureSession возвращает идентификатор из сессии, создавая новую
// анонимную сессию при её отсутствии.
func (a *AuthHandler) EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if sessionCookie, err := r.Cookie("sessionID"); err == nil {
		if userID, ok := a.sessions.GetUserIdBySession(sessionCookie.Value); ok {
			return userID
		}
	}

	userID := "anon-" + random.RandString(12)
	sessionID := random.RandString(32)
	a.sessions.StoreSession(sessionID, userID)

	http.SetCookie(w, &http.Cookie{
		Name:     "sessionID",
		Value:    sessionID,
		Expires:  time.Now().Add(10 * time.Hour),
		Secure:   true,
		HttpOnly: true,
	})
	return userID
}
