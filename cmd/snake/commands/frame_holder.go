package commands

import (
	"context"

	"github.com/battlesnakeio/snake/controller"
)

type frameHolder struct {
	frames []*controller.Frame
}

func loadFrames(ctx context.Context, store controller.Store, id string) (*frameHolder, error) {
	frames, err := store.ListGameFrames(ctx, id, 0, 0)
	if err != nil {
		return nil, err
	}
	return &frameHolder{frames: frames}, nil
}

func (fh *frameHolder) get(index int) *controller.Frame {
	if index < 0 || index >= len(fh.frames) {
		return nil
	}
	return fh.frames[index]
}

func (fh *frameHolder) count() int {
	return len(fh.frames)
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, *controller.Frame, bool) {
	if frameIndex+1 >= frames.count() {
		return frameIndex, frames.get(frameIndex), true
	}
	frameIndex++
	return frameIndex, frames.get(frameIndex), frameIndex == frames.count()-1
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, *controller.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex, frames.get(frameIndex)
}
