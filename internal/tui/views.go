package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/space84/studycafe/internal/detail"
	"github.com/space84/studycafe/internal/directory"
	"github.com/space84/studycafe/internal/fanfic"
	"github.com/space84/studycafe/internal/gallery"
	apihttp "github.com/space84/studycafe/internal/http"
	"github.com/space84/studycafe/internal/router"
)

// detailChromeHeight is the number of lines the detail header and footer use.
const detailChromeHeight = 6

// listChromeHeight is the number of lines the list header, search and footer use.
const listChromeHeight = 9

// homeCard is one of the static informational cards.
type homeCard struct {
	Icon        string
	Title       string
	Description string
	Action      string
	Fanfic      bool
}

var homeCards = []homeCard{
	{Icon: "💺", Title: "좌석 관리", Description: "실시간 좌석 현황 확인 및 예약", Action: "좌석 보기"},
	{Icon: "⏱", Title: "이용권 관리", Description: "시간권, 기간권 구매 및 관리", Action: "이용권 구매"},
	{Icon: "☕", Title: "카페 서비스", Description: "음료 및 간식 주문", Action: "주문하기"},
	{Icon: "🎵", Title: "아티스트 팬픽", Description: "아티스트 팬픽 라이브러리", Action: "팬픽 보기 (f)", Fanfic: true},
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	switch m.s.router.Current().View {
	case router.ViewHome:
		b.WriteString(m.viewHome())
	case router.ViewList:
		b.WriteString(m.viewList())
	case router.ViewDetail:
		b.WriteString(m.viewDetail())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("☕ Space84 StudyCafe"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("환영합니다!"))
	b.WriteString("\n\n")

	switch {
	case m.info != nil:
		b.WriteString(successStyle.Render("API 연결 성공: " + m.info.String()))
		b.WriteString("\n\n")
	case m.infoErr != nil:
		b.WriteString(dimStyle.Render("API 연결 실패: " + m.settings.APIURL))
		b.WriteString("\n\n")
	}

	cards := make([]string, 0, len(homeCards))
	for _, card := range homeCards {
		style := cardStyle
		if card.Fanfic {
			style = fanficCardStyle
		}
		body := fmt.Sprintf("%s %s\n%s\n\n[%s]",
			card.Icon, lipgloss.NewStyle().Bold(true).Render(card.Title),
			dimStyle.Render(card.Description),
			card.Action,
		)
		cards = append(cards, style.Render(body))
	}

	if m.width > 0 && m.width < 4*lipgloss.Width(cards[0]) {
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder
	dir := m.s.directory
	visible := dir.Visible()

	b.WriteString(titleStyle.Render("🎵 아티스트 팬픽 라이브러리"))
	b.WriteString(" ")
	count := fmt.Sprintf("%d명", len(visible))
	if dir.Query() != "" {
		count = fmt.Sprintf("%d/%d명", len(visible), len(dir.All()))
	}
	b.WriteString(chipStyle.Render(count))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case dir.Loading():
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading artists..."))
		b.WriteString("\n")
		return b.String()

	case dir.State() == directory.StateFailed:
		b.WriteString(errorStyle.Render("아티스트 목록을 불러오지 못했습니다"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(describeError(dir.Err())))
		b.WriteString("\n")
		return b.String()

	case dir.NoResults():
		msg := "검색 결과가 없습니다"
		if q := dir.Query(); q != "" {
			msg = fmt.Sprintf("%q 검색 결과가 없습니다", q)
		}
		b.WriteString(dimStyle.Render(msg))
		b.WriteString("\n")
		return b.String()
	}

	rows := m.listRows()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(visible))

	for i := start; i < end; i++ {
		artist := visible[i]
		chip := mutedChipStyle.Render(artist.TracksLabel())
		if artist.HasTracks() {
			chip = chipStyle.Render(artist.TracksLabel())
		}

		line := fmt.Sprintf("  %s %s", artist.Name, chip)
		if i == m.cursor {
			line = selectedStyle.Render("› "+artist.Name) + " " + chip
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(visible) > rows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(visible))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewDetail() string {
	var b strings.Builder
	view := m.s.detail

	b.WriteString(titleStyle.Render("🎵 아티스트 팬픽"))
	b.WriteString("\n")

	switch view.State() {
	case detail.StateIdle, detail.StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loading %s...", view.Slug())))
		b.WriteString("\n")

	case detail.StateNotFound:
		b.WriteString(infoStyle.Render("팬픽을 찾을 수 없습니다."))
		b.WriteString("\n")

	case detail.StateFailed:
		b.WriteString(errorStyle.Render("팬픽을 불러오지 못했습니다 (네트워크 오류)"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(describeError(view.Err())))
		b.WriteString("\n")

	case detail.StateReady:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderDetail renders the sections of a ready narrative. Optional
// sections are omitted entirely when empty.
func renderDetail(s detail.Sections, thumbs []gallery.Thumbnail, galleryLoading bool, width int) string {
	var b strings.Builder
	textWidth := max(width-4, 20)

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1976D2")).Render(s.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("아티스트: " + s.Artist))
	b.WriteString("\n")

	if len(s.Chips) > 0 {
		chips := make([]string, len(s.Chips))
		for i, c := range s.Chips {
			chips[i] = chipStyle.Render(c)
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(storyStyle.Width(textWidth).Render(strings.Join(s.Paragraphs, "\n\n")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("💿 " + s.TracksHeading))
	b.WriteString("\n")
	for _, track := range s.Tracks {
		b.WriteString("  ♪ " + track + "\n")
	}

	if s.HasSimilarArtists() {
		b.WriteString(sectionStyle.Render("🎵 유사 아티스트"))
		b.WriteString("\n")
		b.WriteString("  " + strings.Join(s.SimilarArtists, " · "))
		b.WriteString("\n")
	}

	if s.HasGallery() {
		b.WriteString(sectionStyle.Render("📸 아티스트 이미지 갤러리"))
		b.WriteString("\n")
		switch {
		case len(thumbs) > 0:
			for _, thumb := range thumbs {
				b.WriteString(thumb.Rendered)
				b.WriteString("\n")
				b.WriteString(dimStyle.Render(s.Gallery[thumb.Index].Alt))
				b.WriteString("\n")
			}
		case galleryLoading:
			b.WriteString(dimStyle.Render("  loading images..."))
			b.WriteString("\n")
		default:
			for _, img := range s.Gallery {
				b.WriteString(fmt.Sprintf("  %s  %s\n", img.Alt, dimStyle.Render(img.URL)))
			}
		}
	}

	if s.HasVideos() {
		b.WriteString(sectionStyle.Render("🎬 대표곡 유튜브"))
		b.WriteString("\n")
		for _, v := range s.Videos {
			b.WriteString(fmt.Sprintf("  ▶ %s\n    %s\n    %s\n", v.Title, infoStyle.Render(v.EmbedURL), dimStyle.Render(v.WatchURL)))
		}
	}

	return b.String()
}

// describeError gives a one-line reason for a failed fetch.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *apihttp.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	switch fanfic.Classify(err) {
	case fanfic.KindCanceled:
		return "요청이 취소되었습니다"
	default:
		return err.Error()
	}
}

// listRows is how many artists fit on screen.
func (m Model) listRows() int {
	return max(m.height-listChromeHeight, 3)
}

func (m Model) getHelpText() string {
	switch m.s.router.Current().View {
	case router.ViewHome:
		return "f/enter: 팬픽 보기 • q: quit"
	case router.ViewList:
		return "type to search • ↑/↓: move • enter: open • ctrl+r: reload • esc: home"
	case router.ViewDetail:
		return "↑/↓: scroll • r: refresh • esc: list • h: home • q: quit"
	}
	return ""
}
