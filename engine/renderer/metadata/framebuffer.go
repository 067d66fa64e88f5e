package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/ace/engine/core"
)

/** @brief Which framebuffer binding point a bind affects. */
type FramebufferTarget uint8

const (
	FramebufferReadOnly FramebufferTarget = iota
	FramebufferDrawOnly
	FramebufferReadAndDraw
)

var framebufferTargetNames = []string{"ReadOnly", "DrawOnly", "ReadAndDraw"}

func (t FramebufferTarget) String() string {
	return nameOf(framebufferTargetNames, t, "FramebufferTarget")
}

type AttachmentPoint uint8

const (
	AttachmentColor AttachmentPoint = iota
	AttachmentDepth
	AttachmentStencil
	AttachmentDepthStencil
)

/**
 * @brief A framebuffer attachment point. Index is only meaningful for colour
 * attachments, where it selects the colour plane.
 */
type Attachment struct {
	Point AttachmentPoint
	Index uint32
}

var (
	DepthAttachment        = Attachment{Point: AttachmentDepth}
	StencilAttachment      = Attachment{Point: AttachmentStencil}
	DepthStencilAttachment = Attachment{Point: AttachmentDepthStencil}
)

// ColorAttachment returns colour attachment i.
func ColorAttachment(i uint32) Attachment {
	return Attachment{Point: AttachmentColor, Index: i}
}

func (a Attachment) String() string {
	switch a.Point {
	case AttachmentColor:
		return fmt.Sprintf("color%d", a.Index)
	case AttachmentDepth:
		return "depth"
	case AttachmentStencil:
		return "stencil"
	case AttachmentDepthStencil:
		return "depth_stencil"
	}
	return fmt.Sprintf("Attachment(%d)", a.Point)
}

// UnmarshalText accepts color<N>, depth, stencil and depth_stencil.
func (a *Attachment) UnmarshalText(text []byte) error {
	s := normalizeName(string(text))
	switch s {
	case "depth":
		*a = DepthAttachment
		return nil
	case "stencil":
		*a = StencilAttachment
		return nil
	case "depthstencil":
		*a = DepthStencilAttachment
		return nil
	}
	if rest, ok := strings.CutPrefix(s, "color"); ok {
		i, err := strconv.ParseUint(rest, 10, 32)
		if err == nil {
			*a = ColorAttachment(uint32(i))
			return nil
		}
	}
	return &core.UnknownNameError{Kind: "attachment", Name: string(text)}
}

func (a Attachment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
