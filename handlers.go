package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/graphql-go/graphql"

	"cashcompass/dtos"
	"cashcompass/pkg/graph"
	"cashcompass/pkg/passwd"
	"cashcompass/store"
)

type server struct {
	st        *store.Store
	hasher    passwd.Hasher
	jwtSecret []byte
	schema    graphql.Schema
}

func newRouter(st *store.Store, hasher passwd.Hasher, jwtSecret []byte) (*gin.Engine, error) {
	schema, err := graph.NewSchema(st, hasher)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}
	s := &server{st: st, hasher: hasher, jwtSecret: jwtSecret, schema: schema}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/graphql", s.handleGraphQL)

	api := r.Group("/api")
	{
		api.POST("/users/login", s.login)
		api.GET("/me", s.jwtAuth(), s.me)

		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.POST("/users", s.createUser)
		api.PUT("/users/:id", s.updateUser)
		api.DELETE("/users/:id", s.deleteUser)

		api.GET("/categories", s.listCategories)
		api.GET("/categories/:id", s.getCategory)
		api.GET("/categories/user/:userId", s.listCategoriesByUser)
		api.POST("/categories", s.createCategory)
		api.PUT("/categories/:id", s.updateCategory)
		api.DELETE("/categories/:id", s.deleteCategory)

		api.GET("/incomesources", s.listIncomeSources)
		api.GET("/incomesources/:id", s.getIncomeSource)
		api.GET("/incomesources/user/:userId", s.listIncomeSourcesByUser)
		api.POST("/incomesources", s.createIncomeSource)
		api.PUT("/incomesources/:id", s.updateIncomeSource)
		api.DELETE("/incomesources/:id", s.deleteIncomeSource)

		api.GET("/allocations", s.listAllocations)
		api.GET("/allocations/:id", s.getAllocation)
		api.GET("/allocations/user/:userId", s.listAllocationsByUser)
		api.GET("/allocations/income/:incomeId", s.listAllocationsByIncome)
		api.POST("/allocations", s.createAllocation)
		api.PUT("/allocations/:id", s.updateAllocation)
		api.DELETE("/allocations/:id", s.deleteAllocation)

		api.GET("/expenses", s.listExpenses)
		api.GET("/expenses/:id", s.getExpense)
		api.GET("/expenses/user/:userId", s.listExpensesByUser)
		api.GET("/expenses/category/:categoryId", s.listExpensesByCategory)
		api.POST("/expenses", s.createExpense)
		api.PUT("/expenses/:id", s.updateExpense)
		api.DELETE("/expenses/:id", s.deleteExpense)
	}

	return r, nil
}

type graphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (s *server) handleGraphQL(c *gin.Context) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})
	c.JSON(http.StatusOK, result)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *server) login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeValidationError(c, err)
		return
	}
	u, err := s.st.GetUserByEmail(c.Request.Context(), in.Email)
	if err != nil || !s.hasher.Verify(u.PasswordHash, in.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
			"kind":    "unauthorized",
			"message": "invalid credentials",
		}})
		return
	}
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(u.ID), 10),
		"email": u.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed, "user": dtos.NewUserOutput(u)})
}

func (s *server) jwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind":    "unauthorized",
				"message": "missing bearer token",
			}})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind":    "unauthorized",
				"message": "invalid token",
			}})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind":    "unauthorized",
				"message": "invalid token",
			}})
			return
		}
		sub, _ := claims["sub"].(string)
		id, convErr := strconv.ParseUint(sub, 10, 64)
		if convErr != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"kind":    "unauthorized",
				"message": "invalid token",
			}})
			return
		}
		c.Set("userID", uint(id))
		c.Next()
	}
}

func (s *server) me(c *gin.Context) {
	id := c.GetUint("userID")
	u, err := s.st.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserOutput(u))
}

// pathID parses a positive integer path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"kind":    "validation",
			"message": fmt.Sprintf("%s must be a positive integer", name),
		}})
		return 0, false
	}
	return uint(id), true
}

func parsePage(c *gin.Context) (limit, offset int) {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"kind":    "not_found",
			"message": err.Error(),
		}})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{
			"kind":    "conflict",
			"message": err.Error(),
		}})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"kind":    "internal",
			"message": "internal server error",
		}})
	}
}

func writeValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
		"kind":    "validation",
		"message": err.Error(),
	}})
}
