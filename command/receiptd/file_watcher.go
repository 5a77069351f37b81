// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher - report changes to the configuration file
type FileWatcher interface {
	Start() error
	Close() error
}

const (
	fileWatcherLoggerPrefix = "watcher"
)

// FileWatcherData - state of a single file watch
type FileWatcherData struct {
	log         *logger.L
	watcherData WatcherData
	watcher     *fsnotify.Watcher
	filePath    string
}

// WatcherData - where events are delivered
type WatcherData struct {
	channels WatcherChannel
}

// WatcherChannel - buffered event channels, a full channel drops the event
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, data WatcherData) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file %s error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:         log,
		watcher:     watcher,
		watcherData: data,
		filePath:    filePath,
	}, nil
}

// Start - watch the directory holding the file so editors that
// replace the file by rename are still seen
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if path.Base(event.Name) != path.Base(w.filePath) {
					continue
				}

				if watcherEventFileRemove(event) {
					w.log.Warnf("file %s removed", w.filePath)
					w.sendEvent(w.watcherData.channels.remove, "remove")
					continue
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending config change event…")
					w.sendEvent(w.watcherData.channels.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Close - stop watching
func (w *FileWatcherData) Close() error {
	return w.watcher.Close()
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
