// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package launcher opens links through the host operating system.
//
// The platform-specific part lives behind the Opener interface and is
// chosen once at startup with NewSystemOpener(runtime.GOOS). The Launcher
// adds the link semantics on top: application fallbacks and opening every
// link in a folder.
package launcher

import (
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

var (
	// ErrNothingToOpen is returned by OpenAll when no links are reachable.
	ErrNothingToOpen = errors.New("nothing to open")

	// ErrNotALink is returned when Open is given a folder.
	ErrNotALink = errors.New("item is not a link")

	// ErrEmptyURL is returned when a link has no URL.
	ErrEmptyURL = errors.New("link has no url")
)

// Result summarizes an OpenAll run.
type Result struct {
	// Attempted counts open attempts, successful or not. Failures are
	// logged and do not stop the batch.
	Attempted int
}

// Launcher opens links and folders of links.
type Launcher struct {
	opener Opener
	log    logrus.FieldLogger
}

// New creates a launcher around opener.
func New(opener Opener, log logrus.FieldLogger) *Launcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Launcher{opener: opener, log: log}
}

// Open opens a single link, in its saved application when the platform
// allows it and with the default handler otherwise.
func (l *Launcher) Open(link item.Item) error {
	if !link.IsLink() {
		return ErrNotALink
	}
	url := strings.TrimSpace(link.URL)
	if url == "" {
		return ErrEmptyURL
	}

	app := link.App
	if app != nil && !l.opener.SupportsApps() {
		l.log.WithFields(logrus.Fields{"id": link.ID, "app": app.Name}).
			Warn("opening in a specific application is not supported here, using the default handler")
		app = nil
	}

	l.log.WithFields(logrus.Fields{"id": link.ID, "url": url}).Debug("opening link")
	return l.opener.Open(url, app)
}

// OpenAll opens every link under folder, depth-first in pre-order.
func (l *Launcher) OpenAll(folder item.Item) (Result, error) {
	if folder.IsLink() {
		return l.openEach([]item.Item{folder})
	}
	return l.openEach(item.CollectLinks(folder.Items))
}

// OpenAllTree opens every link in the tree.
func (l *Launcher) OpenAllTree(t item.Tree) (Result, error) {
	return l.openEach(item.CollectLinks(t.Items))
}

func (l *Launcher) openEach(links []item.Item) (Result, error) {
	if len(links) == 0 {
		return Result{}, ErrNothingToOpen
	}

	var res Result
	for _, link := range links {
		res.Attempted++
		if err := l.Open(link); err != nil {
			l.log.WithFields(logrus.Fields{"id": link.ID, "url": link.URL}).
				WithError(err).Warn("failed to open link")
		}
	}
	return res, nil
}
