package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"talentos-backend/config"
	apiv1 "talentos-backend/controllers/v1"
	"talentos-backend/controllers/v1/public"
	"talentos-backend/fiberlog"
	"talentos-backend/initializers"
	"talentos-backend/lib/ws"
	"talentos-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitUsuarioApiRouters(apiV1)
	apiv1.InitVagaApiRouters(apiV1)
	apiv1.InitCandidatoApiRouters(apiV1)
	apiv1.InitClienteApiRouters(apiV1)
	apiv1.InitShareLinkApiRouters(apiV1)
	apiv1.InitEventoApiRouters(apiV1)
	apiv1.InitNotificacaoApiRouters(apiV1)
	apiv1.InitKpiApiRouters(apiV1)
	apiv1.InitAgendaApiRouters(apiV1)

	//inscrição pública, sem autenticação
	publicApp := fiber.New()
	apiV1.Mount("/public", publicApp)
	public.InitApplicationApiRouters(publicApp)

	//websocket
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Encerrando o serviço...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("erro ao encerrar o serviço")
		}
		time.Sleep(time.Second)
		log.Info("Serviço encerrado")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("Servidor HTTP encerrado")
}
