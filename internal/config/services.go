package config

import (
	"os"
	"strconv"
	"time"
)

type SyncSvcCfg struct {
	SyncInterval time.Duration
	LockTTL      time.Duration
}

func NewSyncSvcCfg() *SyncSvcCfg {
	syncIntervalSec := os.Getenv("SYNC_INTERVAL_SEC")
	lockTTLSec := os.Getenv("SYNC_LOCK_TTL_SEC")
	varInt, err := strconv.Atoi(syncIntervalSec)
	if err != nil {
		varInt = 3600
	}
	varInt2, err := strconv.Atoi(lockTTLSec)
	if err != nil {
		varInt2 = 1800
	}
	return &SyncSvcCfg{
		SyncInterval: time.Duration(varInt) * time.Second,
		LockTTL:      time.Duration(varInt2) * time.Second,
	}
}
