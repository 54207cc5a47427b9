// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const watcherLoggerPrefix = "watcher"

// configuration file watcher
type watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newWatcher(targetFile string, log *logger.L) (*watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &watcher{
		log:      log,
		watcher:  w,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - begin delivering events for the file
func (w *watcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			event, ok := <-w.watcher.Events
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Errorf("file: %q removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.sendEvent(w.change, "change")
			}
		}
	}()

	return nil
}

// Stop - release the underlying notifier
func (w *watcher) Stop() error {
	return w.watcher.Close()
}

// Changed - receives once per burst of writes
func (w *watcher) Changed() <-chan struct{} {
	return w.change
}

// Removed - receives if the file is deleted or renamed
func (w *watcher) Removed() <-chan struct{} {
	return w.remove
}

func (w *watcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// re-reads the configuration for each change until shutdown or removal
type reloader struct {
	log      *logger.L
	fileName string
	current  *Configuration
	watcher  *watcher
	setRate  func(float64) error
}

// Run - background process loop
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return

		case <-r.watcher.Removed():
			r.log.Warnf("configuration: %q removed, reloading disabled", r.fileName)
			return

		case <-r.watcher.Changed():
			updated, err := getConfiguration(r.fileName)
			if nil != err {
				r.log.Errorf("configuration: %q reload error: %s", r.fileName, err)
				continue
			}
			applyConfiguration(r.log, r.current, updated, r.setRate)
		}
	}
}

// copy the settings that can change at run time into current
//
// returns true if anything was applied
func applyConfiguration(log *logger.L, current *Configuration, updated *Configuration, setRate func(float64) error) bool {
	applied := false

	if updated.ClientRPC.RequestRate != current.ClientRPC.RequestRate {
		if err := setRate(updated.ClientRPC.RequestRate); nil != err {
			log.Errorf("set request rate: %v error: %s", updated.ClientRPC.RequestRate, err)
		} else {
			log.Infof("request rate: %v -> %v", current.ClientRPC.RequestRate, updated.ClientRPC.RequestRate)
			current.ClientRPC.RequestRate = updated.ClientRPC.RequestRate
			applied = true
		}
	}

	if !reflect.DeepEqual(updated.Logging.Levels, current.Logging.Levels) {
		log.Warnf("log levels changed to: %v  restart to apply", updated.Logging.Levels)
	}

	return applied
}
