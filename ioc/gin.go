package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirevue/internal/candidate"
	"github.com/ecodeclub/hirevue/internal/interview"
	"github.com/ecodeclub/hirevue/internal/media"
	"github.com/ecodeclub/hirevue/internal/response"
	"github.com/ecodeclub/hirevue/internal/rollup"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	mediaModule *media.Module,
	interviewModule *interview.Module,
	candidateModule *candidate.Module,
	responseModule *response.Module,
	rollupModule *rollup.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 候选人侧凭 session_id 进入，不走登录
	mediaModule.Hdl.PublicRoutes(res.Engine)
	interviewModule.Hdl.PublicRoutes(res.Engine)
	candidateModule.Hdl.PublicRoutes(res.Engine)
	responseModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	interviewModule.Hdl.PrivateRoutes(res.Engine)
	candidateModule.Hdl.PrivateRoutes(res.Engine)
	responseModule.Hdl.PrivateRoutes(res.Engine)
	rollupModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
