package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/auth"
	"github.com/project/lending/internal/usecase/inventory"
	"github.com/project/lending/internal/usecase/lending"
	"github.com/project/lending/internal/usecase/stats"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type implementation struct {
	logger           *zap.Logger
	lendingUseCase   lending.LendingUseCase
	inventoryUseCase inventory.InventoryUseCase
	statsUseCase     stats.StatsUseCase
	authUseCase      auth.AuthUseCase
}

func New(
	logger *zap.Logger,
	lendingUseCase lending.LendingUseCase,
	inventoryUseCase inventory.InventoryUseCase,
	statsUseCase stats.StatsUseCase,
	authUseCase auth.AuthUseCase,
) *implementation {
	return &implementation{
		logger:           logger,
		lendingUseCase:   lendingUseCase,
		inventoryUseCase: inventoryUseCase,
		statsUseCase:     statsUseCase,
		authUseCase:      authUseCase,
	}
}

// NewRouter builds the HTTP surface. Loan and search operations are open to
// any authenticated user; catalog mutations and reports require the
// librarian role.
func (i *implementation) NewRouter(jwt *auth.JWTer) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(i.logger), Recovery(i.logger), Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	api.POST("/auth/register", i.RegisterReader)
	api.POST("/auth/register-librarian", i.RegisterLibrarian)
	api.POST("/auth/login", i.Login)

	user := api.Group("", AuthJWT(jwt, ""))
	user.POST("/loans/borrow", i.BorrowBook)
	user.POST("/loans/return", i.ReturnBook)
	user.POST("/loans/return-all", i.ReturnAll)
	user.GET("/users/:id/fines", i.GetFines)
	user.GET("/users/:id/overdue", i.GetOverdueLoans)
	user.GET("/books/search", i.SearchBooks)

	librarian := api.Group("", AuthJWT(jwt, entity.RoleLibrarian))
	librarian.POST("/books", i.AddBook)
	librarian.POST("/books/batch-delete", i.BatchDeleteBooks)
	librarian.DELETE("/books/:id", i.SafeDeleteBook)
	librarian.DELETE("/users/:id", i.SafeDeleteUser)
	librarian.POST("/users/:id/reissue-card", i.ReissueCard)
	librarian.GET("/books/candidates", i.DeletionCandidates)
	librarian.GET("/stats", i.GetStats)
	librarian.GET("/reports/overdue", i.GetOverdueReport)

	return r
}
