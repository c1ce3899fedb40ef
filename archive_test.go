package varc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

func TestCreateSaveOpenRoundTrip(t *testing.T) {
	t.Parallel()

	Convey("plaintext archive round trip", t, func() {
		fs := newMemFS()
		a, err := Create("/archives/plain.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)

		So(a.AddVirtual("hello.txt", []byte("hello world"), CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("nested/deep.bin", []byte{1, 2, 3, 4}, CreateOptions{}), ShouldBeNil)
		So(a.Save(), ShouldBeNil)
		So(a.IsModified(), ShouldBeFalse)

		reopened, err := Open("/archives/plain.varc", "", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(reopened.Len(), ShouldEqual, 2)

		e, err := reopened.FindEntry("hello.txt")
		So(err, ShouldBeNil)
		So(string(e.Data), ShouldEqual, "hello world")
	})

	Convey("encrypted + compressed archive round trip", t, func() {
		fs := newMemFS()
		a, err := Create("/archives/secret.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		a.pipeline.Crypto.Iterations = 1000 // key derivation goes through a.crypto, so this does not lower it

		co := CreateOptions{Password: "correct horse battery staple", Encrypt: true, Compress: true}
		payload := []byte("the quick brown fox jumps over the lazy dog, repeatedly, a lot")
		So(a.AddVirtual("secret.txt", payload, co), ShouldBeNil)
		So(a.Save(), ShouldBeNil)

		// on disk, nothing resembles the plaintext
		raw, err := fs.ReadFile("/archives/secret.varc")
		So(err, ShouldBeNil)
		So(string(raw), ShouldNotContainSubstring, "quick brown fox")

		reopened, err := Open("/archives/secret.varc", "correct horse battery staple", WithFileSystem(fs))
		So(err, ShouldBeNil)
		e, err := reopened.FindEntry("secret.txt")
		So(err, ShouldBeNil)
		So(e.Data, ShouldResemble, payload)

		Convey("wrong password fails to open", func() {
			_, err := Open("/archives/secret.varc", "wrong password entirely", WithFileSystem(fs))
			So(err, ShouldNotBeNil)
		})

		Convey("no password on an encrypted archive fails", func() {
			_, err := Open("/archives/secret.varc", "", WithFileSystem(fs))
			So(err, ShouldNotBeNil)
			So(varcerr.Is(err, varcerr.PasswordRequired), ShouldBeTrue)
		})
	})
}

func TestDuplicatePathRejected(t *testing.T) {
	t.Parallel()

	Convey("adding the same path twice fails", t, func() {
		a, err := Create("/x.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("a.txt", []byte("1"), CreateOptions{}), ShouldBeNil)
		err = a.AddVirtual("a.txt", []byte("2"), CreateOptions{})
		So(err, ShouldNotBeNil)
		So(varcerr.Is(err, varcerr.Duplicate), ShouldBeTrue)
		So(a.Len(), ShouldEqual, 1)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	Convey("Verify detects tampering", t, func() {
		fs := newMemFS()
		a, err := Create("/v.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(a.AddVirtual("data.bin", []byte("original content"), CreateOptions{}), ShouldBeNil)
		So(a.Save(), ShouldBeNil)

		reopened, err := Open("/v.varc", "", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(reopened.Verify(), ShouldBeNil)

		e, _ := reopened.FindEntry("data.bin")
		e.Data[0] = 'X'
		So(reopened.VerifyEntry("data.bin"), ShouldNotBeNil)
	})
}

func TestLockUnlockChangePassword(t *testing.T) {
	t.Parallel()

	Convey("Lock/Unlock/ChangePassword", t, func() {
		fs := newMemFS()
		a, err := Create("/lock.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		a.pipeline.Crypto.Iterations = 1000
		So(a.AddVirtual("f.txt", []byte("plaintext payload"), CreateOptions{}), ShouldBeNil)
		So(a.IsEncrypted(), ShouldBeFalse)

		So(a.Lock("first password"), ShouldBeNil)
		So(a.IsEncrypted(), ShouldBeTrue)
		e, err := a.FindEntry("f.txt")
		So(err, ShouldBeNil)
		// Lock re-encrypts immediately: Data now holds ciphertext that
		// still reverses to the original plaintext.
		So(e.IsEncrypted(), ShouldBeTrue)
		So(string(e.Data), ShouldNotEqual, "plaintext payload")
		So(a.VerifyEntry("f.txt"), ShouldBeNil)

		So(a.Save(), ShouldBeNil)
		reopened, err := Open("/lock.varc", "first password", WithFileSystem(fs))
		So(err, ShouldBeNil)
		e2, _ := reopened.FindEntry("f.txt")
		So(string(e2.Data), ShouldEqual, "plaintext payload")

		So(reopened.ChangePassword("first password", "second password"), ShouldBeNil)
		So(reopened.Save(), ShouldBeNil)

		_, err = Open("/lock.varc", "first password", WithFileSystem(fs))
		So(err, ShouldNotBeNil)

		third, err := Open("/lock.varc", "second password", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(third.Unlock("second password"), ShouldBeNil)
		So(third.IsEncrypted(), ShouldBeFalse)
		So(third.Save(), ShouldBeNil)

		plain, err := Open("/lock.varc", "", WithFileSystem(fs))
		So(err, ShouldBeNil)
		e3, _ := plain.FindEntry("f.txt")
		So(string(e3.Data), ShouldEqual, "plaintext payload")
	})
}

func TestExtractPathEscapeRejected(t *testing.T) {
	t.Parallel()

	Convey("ExtractFile rejects escaping paths", t, func() {
		fs := newMemFS()
		a, err := Create("/e.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)

		e, err := NewEntryFromBytes("../../etc/passwd", []byte("pwned"), FileEntry)
		So(err, ShouldBeNil)
		// bypass AddEntry's normal path (which would accept this, since
		// path validation there only bounds length) to exercise
		// safeJoin directly, as Open() would for a hostile archive.
		a.entries = append(a.entries, e)

		err = a.ExtractFile("../../etc/passwd", "/out")
		So(err, ShouldNotBeNil)
		So(fs.hasPathUnder("/etc"), ShouldBeFalse)
	})

	Convey("ExtractAll writes entries under outDir", t, func() {
		fs := newMemFS()
		a, err := Create("/e2.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(a.AddVirtual("a/b/c.txt", []byte("leaf"), CreateOptions{}), ShouldBeNil)

		So(a.ExtractAll("/out", ExtractOptions{Overwrite: true}), ShouldBeNil)
		data, err := fs.ReadFile("/out/a/b/c.txt")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "leaf")
	})

	Convey("ExtractAll honors Filter and default no-overwrite", t, func() {
		fs := newMemFS()
		a, err := Create("/e3.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(a.AddVirtual("keep.txt", []byte("keep"), CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("skip.txt", []byte("skip"), CreateOptions{}), ShouldBeNil)

		So(a.ExtractAll("/filtered", ExtractOptions{Filter: []string{"keep"}}), ShouldBeNil)
		_, err = fs.ReadFile("/filtered/keep.txt")
		So(err, ShouldBeNil)
		_, err = fs.ReadFile("/filtered/skip.txt")
		So(err, ShouldNotBeNil)

		So(fs.WriteFile("/reextract/keep.txt", []byte("preexisting"), 0o644), ShouldBeNil)
		So(a.ExtractAll("/reextract", ExtractOptions{}), ShouldBeNil)
		data, err := fs.ReadFile("/reextract/keep.txt")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "preexisting")
	})
}

func TestFindEntriesGlob(t *testing.T) {
	t.Parallel()

	Convey("FindEntries matches globs", t, func() {
		a, err := Create("/g.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("img1.png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("img2.png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("notes.txt", []byte("notes"), CreateOptions{}), ShouldBeNil)

		matches, err := a.FindEntries("*.png")
		So(err, ShouldBeNil)
		So(len(matches), ShouldEqual, 2)
	})

	Convey("FindEntries' * crosses path separators", t, func() {
		a, err := Create("/g2.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("nested/deep.bin", []byte{1, 2, 3}, CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("top.bin", []byte{1, 2, 3}, CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("nested/deep.txt", []byte("x"), CreateOptions{}), ShouldBeNil)

		matches, err := a.FindEntries("*.bin")
		So(err, ShouldBeNil)
		So(len(matches), ShouldEqual, 2)
	})
}

func TestRemoveEntry(t *testing.T) {
	t.Parallel()

	Convey("RemoveEntry drops the entry and frees its path", t, func() {
		a, err := Create("/r.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("x.txt", []byte("x"), CreateOptions{}), ShouldBeNil)
		So(a.RemoveEntry("x.txt"), ShouldBeNil)
		So(a.Len(), ShouldEqual, 0)

		// path is free again
		So(a.AddVirtual("x.txt", []byte("y"), CreateOptions{}), ShouldBeNil)
		So(a.Len(), ShouldEqual, 1)

		err = a.RemoveEntry("missing.txt")
		So(err, ShouldNotBeNil)
		So(varcerr.Is(err, varcerr.NotFound), ShouldBeTrue)
	})
}

func TestRemoveEntriesGlob(t *testing.T) {
	t.Parallel()

	Convey("RemoveEntries removes every matching entry", t, func() {
		a, err := Create("/rg.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("logs/a.log", []byte("a"), CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("logs/b.log", []byte("b"), CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("keep.txt", []byte("keep"), CreateOptions{}), ShouldBeNil)

		So(a.RemoveEntries("*.log"), ShouldBeNil)
		So(a.Len(), ShouldEqual, 1)
		_, err = a.FindEntry("keep.txt")
		So(err, ShouldBeNil)

		err = a.RemoveEntries("*.log")
		So(err, ShouldNotBeNil)
		So(varcerr.Is(err, varcerr.NotFound), ShouldBeTrue)
	})
}

func TestAddDirectoryRecursive(t *testing.T) {
	t.Parallel()

	Convey("AddDirectory walks recursively and skips hidden files by default", t, func() {
		fs := newMemFS()
		So(fs.WriteFile("/src/a.txt", []byte("a"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/src/sub/b.txt", []byte("b"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/src/.hidden", []byte("secret"), 0o644), ShouldBeNil)

		a, err := Create("/dir.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(a.AddDirectory("/src", CreateOptions{}), ShouldBeNil)
		So(a.Len(), ShouldEqual, 2)

		_, err = a.FindEntry("a.txt")
		So(err, ShouldBeNil)
		_, err = a.FindEntry("sub/b.txt")
		So(err, ShouldBeNil)
		_, err = a.FindEntry(".hidden")
		So(err, ShouldNotBeNil)
	})

	Convey("AddDirectory includes hidden files when asked", t, func() {
		fs := newMemFS()
		So(fs.WriteFile("/src2/.hidden", []byte("secret"), 0o644), ShouldBeNil)

		a, err := Create("/dir2.varc", WithFileSystem(fs))
		So(err, ShouldBeNil)
		So(a.AddDirectory("/src2", CreateOptions{IncludeHidden: true}), ShouldBeNil)
		So(a.Len(), ShouldEqual, 1)
		_, err = a.FindEntry(".hidden")
		So(err, ShouldBeNil)
	})
}

func TestListSummaryLine(t *testing.T) {
	t.Parallel()

	Convey("List appends a trailing summary", t, func() {
		a, err := Create("/l.varc", WithFileSystem(newMemFS()))
		So(err, ShouldBeNil)
		So(a.AddVirtual("a.txt", []byte("hello"), CreateOptions{}), ShouldBeNil)
		So(a.AddVirtual("b.txt", []byte("world"), CreateOptions{Compress: true}), ShouldBeNil)

		out := a.List(ListOptions{})
		So(out, ShouldContainSubstring, "total: 2 entries")

		full := a.List(ListOptions{ShowChecksums: true, ShowTimestamps: true})
		So(full, ShouldContainSubstring, "a.txt")
	})
}
