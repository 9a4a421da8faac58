package cmem

import "syscall"

func allocRegion(size int) (*Region, error) {
	buf, err := syscall.Mmap(-1, 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_ANON|syscall.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Region{buf: buf, mapped: true}, nil
}

func (r *Region) free() error {
	if r.buf == nil {
		return nil
	}
	buf := r.buf
	r.buf = nil
	if !r.mapped {
		return nil
	}
	r.mapped = false
	return syscall.Munmap(buf)
}
