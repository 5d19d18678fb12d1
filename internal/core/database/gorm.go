package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = gorm.ErrInvalidDB

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(mysqlDSN(o.DSN, o.Username, o.Password))
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(lvl)})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	return db.Session(&gorm.Session{
		PrepareStmt:            true,
		CreateBatchSize:        200,
		SkipDefaultTransaction: true, // 需要时手动开 Tx
	}), nil
}

// mysqlDSN 支持 host:port/db 简写，注入账号并补齐 parseTime/charset
func mysqlDSN(in, user, pass string) string {
	in = strings.TrimSpace(in)
	if in == "" || strings.Contains(in, "@tcp(") {
		return in // 已是 go-sql-driver 语法，不改写
	}
	hostport := in
	dbname := ""
	if i := strings.IndexByte(in, '/'); i >= 0 {
		hostport, dbname = in[:i], in[i+1:]
	}
	cred := user
	if pass != "" {
		cred += ":" + pass
	}
	if cred != "" {
		cred += "@"
	}
	return fmt.Sprintf("%stcp(%s)/%s?parseTime=true&charset=utf8mb4", cred, hostport, dbname)
}
