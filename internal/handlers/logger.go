package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booker/internal/httperr"
	"github.com/BruksfildServices01/appointment-booker/internal/middleware"
)

// getLogger pega o logger que o RequestLogger deixou no contexto.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// fail responde o erro em JSON; erros fora das regras de negócio vão pro log.
func fail(c *gin.Context, err error) {
	if httperr.CodeOf(err) == "" {
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	httperr.FromError(c, err)
}
