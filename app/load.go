package app

import (
	"errors"
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"whitebox/assets"
	"whitebox/content"
	"whitebox/log"
)

// pageLoadedMsg carries a decoded page. page is nil when a reload could not
// read the content file; the current page stays up in that case.
type pageLoadedMsg struct {
	page   *content.Page
	before image.Image
	after  image.Image
	logo   image.Image
	err    error
}

// load reads the page and decodes its images in the background.
func (m *home) load(reload bool) tea.Cmd {
	return loadPage(m.opts.ContentFile, m.opts.Before, m.opts.After, reload)
}

// reload starts a background reload unless one is already running.
func (m *home) reload() tea.Cmd {
	if m.reloading || m.state == stateLoading {
		return nil
	}
	m.reloading = true
	m.updateMenuState()
	return m.load(true)
}

func loadPage(path, before, after string, reload bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		var errs []error

		page, err := content.Load(path)
		if err != nil {
			if reload {
				return pageLoadedMsg{err: err}
			}
			errs = append(errs, err)
			page = content.Default()
		}
		page = page.WithImages(before, after)

		r := page.Resolver()
		msg := pageLoadedMsg{page: page}
		msg.before = loadImage(r, page.Before, assets.BuiltinBefore, &errs)
		msg.after = loadImage(r, page.After, assets.BuiltinAfter, &errs)
		msg.logo = loadImage(r, page.Logo, assets.BuiltinLogo, &errs)
		msg.err = errors.Join(errs...)

		log.InfoLog.Printf("loaded page %q in %v", page.Source, time.Since(start))
		return msg
	}
}

// loadImage decodes ref, falling back to the built-in image for its slot.
func loadImage(r *assets.Resolver, ref, fallback string, errs *[]error) image.Image {
	img, err := r.Load(ref)
	if err == nil {
		return img
	}
	*errs = append(*errs, fmt.Errorf("failed to load %s: %w", ref, err))
	log.WarningLog.Printf("using %s in place of %s: %v", fallback, ref, err)

	img, err = assets.Builtin(fallback)
	if err != nil {
		*errs = append(*errs, err)
		return nil
	}
	return img
}
