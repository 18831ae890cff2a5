package domain

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestArchiveNaming(t *testing.T) {
	Convey("Given the archive naming scheme", t, func() {
		Convey("ArchiveFilename", func() {
			day := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

			Convey("It should produce a dated zip name", func() {
				So(ArchiveFilename(day), ShouldEqual, "backup-2024-01-02.zip")
			})

			Convey("Two runs on the same day should collide on purpose", func() {
				later := day.Add(6 * time.Hour)
				So(ArchiveFilename(later), ShouldEqual, ArchiveFilename(day))
			})
		})

		Convey("IsArchiveName", func() {
			Convey("It should accept archives produced by this tool", func() {
				So(IsArchiveName("backup-2024-01-02.zip"), ShouldBeTrue)
			})

			Convey("It should reject unrelated files", func() {
				So(IsArchiveName("notes.txt"), ShouldBeFalse)
				So(IsArchiveName("backup-2024-01-02.tar.gz"), ShouldBeFalse)
				So(IsArchiveName("site-2024-01-02.zip"), ShouldBeFalse)
			})
		})
	})
}
