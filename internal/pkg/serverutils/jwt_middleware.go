package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJwt must be called once at startup before any request is served.
func InitJwt(secret string) {
	jwtSecret = []byte(secret)
}

// LocalsAuthenticated and LocalsUserName are set by the JWT middlewares for
// downstream handlers.
const (
	LocalsAuthenticated = "authenticated"
	LocalsUserName      = "user_name"
	LocalsUserEmail     = "user_email"
)

// JwtMiddleware rejects requests without a valid bearer token.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearer(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid token"))
	}
	setAuthLocals(ctx, claims)
	return ctx.Next()
}

// OptionalJwtMiddleware never rejects: it records whether the caller is
// authenticated so handlers can branch on it.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals(LocalsAuthenticated, false)
	if claims, ok := parseBearer(ctx); ok {
		setAuthLocals(ctx, claims)
	}
	return ctx.Next()
}

// IsAuthenticated reads the flag set by the JWT middlewares.
func IsAuthenticated(ctx *fiber.Ctx) bool {
	authenticated, _ := ctx.Locals(LocalsAuthenticated).(bool)
	return authenticated
}

// UserName reads the display name carried in the token, if any.
func UserName(ctx *fiber.Ctx) string {
	name, _ := ctx.Locals(LocalsUserName).(string)
	return name
}

func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, bool) {
	header := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func setAuthLocals(ctx *fiber.Ctx, claims jwt.MapClaims) {
	ctx.Locals(LocalsAuthenticated, true)
	if name, ok := claims["name"].(string); ok {
		ctx.Locals(LocalsUserName, name)
	}
	if sub, ok := claims["sub"].(string); ok {
		ctx.Locals(LocalsUserEmail, sub)
	}
}
