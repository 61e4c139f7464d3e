// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/expensed/pkg/tools"
)

// sessionHeader carries the MCP session id over HTTP.
const sessionHeader = "Mcp-Session-Id"

// httpServer adapts the MCP server to streamable HTTP: one JSON-RPC
// request per POST /mcp, with a server-assigned session id handed out on
// initialize and required afterwards.
type httpServer struct {
	mcp *mcpServer

	mu       sync.Mutex
	sessions map[string]struct{}
}

func newHTTPServer(cfg *Config) *httpServer {
	return &httpServer{
		mcp:      newMCPServer(cfg),
		sessions: make(map[string]struct{}),
	}
}

// runServe starts the MCP server over HTTP.
func runServe(args []string, configPath string, globals GlobalFlags) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "Listen address (overrides config, default 0.0.0.0:8000)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: expensed serve [options]

Description:
  Run the expense-tracker MCP server over HTTP. Tool invocations are
  JSON-RPC 2.0 requests POSTed to /mcp; the categories document is also
  served directly at /categories.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  expensed serve                      Listen on 0.0.0.0:8000
  expensed serve --addr 127.0.0.1:9000
  DEPLOYMENT_MODE=cloud expensed serve   Non-durable in-memory storage

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(ExitUsage)
	}

	if err := godotenv.Load(); err != nil && !globals.Quiet {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadConfigOrDefault(configPath, globals.Quiet)
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	server := newHTTPServer(cfg)
	defer func() { _ = server.mcp.handle.Close() }()

	router := server.router(globals.Quiet)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("expensed MCP server listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP serve error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// router builds the gin engine with middleware and routes.
func (s *httpServer) router(quiet bool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", sessionHeader},
		ExposeHeaders: []string{sessionHeader},
		MaxAge:        12 * time.Hour,
	}))

	if !quiet {
		router.Use(func(c *gin.Context) {
			start := time.Now()
			c.Next()
			log.Printf("%s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		})
	}

	router.POST("/mcp", s.handlePost)
	router.DELETE("/mcp", s.handleDelete)
	router.GET("/categories", s.handleCategories)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// handlePost processes one JSON-RPC request per call.
func (s *httpServer) handlePost(c *gin.Context) {
	var req jsonRPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, jsonRPCResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: -32700, Message: "Parse error", Data: err.Error()},
		})
		return
	}

	if req.Method == "initialize" {
		id := uuid.NewString()
		s.mu.Lock()
		s.sessions[id] = struct{}{}
		s.mu.Unlock()
		c.Header(sessionHeader, id)
	} else if !s.validSession(c.GetHeader(sessionHeader)) {
		c.JSON(http.StatusNotFound, jsonRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: -32000, Message: "Unknown or missing session"},
		})
		return
	}

	resp := s.mcp.handleRequest(c.Request.Context(), req)

	// Notifications get an empty accepted response.
	if resp.ID == nil && resp.Result == nil && resp.Error == nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleDelete terminates a session.
func (s *httpServer) handleDelete(c *gin.Context) {
	id := c.GetHeader(sessionHeader)
	if !s.validSession(id) {
		c.Status(http.StatusNotFound)
		return
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	c.Status(http.StatusOK)
}

// handleCategories serves the categories resource document directly, so
// plain HTTP clients can read it without speaking MCP.
func (s *httpServer) handleCategories(c *gin.Context) {
	doc := tools.Categories(s.mcp.config.Storage.CategoriesPath)
	c.Data(http.StatusOK, tools.CategoriesMIMEType, []byte(doc))
}

func (s *httpServer) validSession(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}
